package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
)

// Sessions starts and destroys sessions. Implemented by session.Manager.
type Sessions interface {
	Start(ctx context.Context, playerCount int, level int) (session.Session, error)
	Teardown()
}

// TickHealth reports failed ticks of the running session. Implemented by
// tick.Scheduler.
type TickHealth interface {
	ConsecutiveFailures() int
	LastError() error
}

type startResult struct {
	seq     int
	session session.Session
	err     error
}

// StartResult is the outcome of the latest StartGame.
type StartResult struct {
	Session session.Session
	Err     error
}

// Controller decides which mode the client is in. It owns no scenes; the
// game loads the scene matching each transition it reports.
type Controller struct {
	sessions        Sessions
	health          TickHealth
	maxTickFailures int

	mode GameMode
	// starts receives the outcome of background Start calls.
	starts chan startResult
	// seq numbers StartGame calls so that only the latest result is used.
	seq int
}

type NewControllerOptions struct {
	Sessions Sessions
	Health   TickHealth
	// MaxTickFailures gives up on a session after that many consecutive
	// failed ticks. Zero retries forever.
	MaxTickFailures int
}

func NewController(opts NewControllerOptions) (*Controller, error) {
	if opts.Sessions == nil || opts.Health == nil {
		return nil, fmt.Errorf("sessions and tick health are required")
	}
	return &Controller{
		sessions:        opts.Sessions,
		health:          opts.Health,
		maxTickFailures: opts.MaxTickFailures,
		mode:            GameModeMenu,
		starts:          make(chan startResult, 4),
	}, nil
}

func (c *Controller) Mode() GameMode {
	return c.mode
}

// ToMenu tears down any session and switches to the menu.
func (c *Controller) ToMenu() {
	c.sessions.Teardown()
	c.mode = GameModeMenu
}

// StartGame tears down any current session and starts a new one in the
// background. PollStart reports the result.
func (c *Controller) StartGame(playerCount int, level int) {
	c.sessions.Teardown()
	c.mode = GameModeStarting

	c.seq++
	seq := c.seq
	go func() {
		s, err := c.sessions.Start(context.Background(), playerCount, level)
		c.starts <- startResult{seq: seq, session: s, err: err}
	}()
}

// PollStart returns the result of the latest StartGame once it is available.
// Cancelled and outdated starts are dropped. A success switches to Play, a
// failure to NetworkError.
func (c *Controller) PollStart() (StartResult, bool) {
	for {
		select {
		case result := <-c.starts:
			if errors.Is(result.err, session.ErrStartCancelled) {
				log.Debug("Discarding cancelled start")
				continue
			}
			if result.seq != c.seq || c.mode != GameModeStarting {
				log.Debug("Discarding outdated start result")
				continue
			}
			if result.err != nil {
				log.Error("Failed to start game: %v", result.err)
				c.Fail()
				return StartResult{Err: result.err}, true
			}
			c.mode = GameModePlay
			return StartResult{Session: result.session}, true
		default:
			return StartResult{}, false
		}
	}
}

// CheckTicks ends the session when the authority has forgotten it or when
// too many ticks in a row failed, and returns the cause. The scheduler
// itself always retries.
func (c *Controller) CheckTicks() error {
	if c.mode != GameModePlay {
		return nil
	}
	lastErr := c.health.LastError()
	if lastErr == nil {
		return nil
	}
	if authority.IsSessionNotFound(lastErr) {
		log.Error("Session lost: %v", lastErr)
		c.Fail()
		return lastErr
	}
	failures := c.health.ConsecutiveFailures()
	if c.maxTickFailures > 0 && failures >= c.maxTickFailures {
		log.Error("Giving up after %d failed ticks: %v", failures, lastErr)
		c.Fail()
		return lastErr
	}
	return nil
}

// Fail tears down the session and switches to NetworkError.
func (c *Controller) Fail() {
	c.sessions.Teardown()
	c.mode = GameModeNetworkError
}

// Back handles the back and confirm inputs. It returns true when it switched
// to the menu.
func (c *Controller) Back(back bool, confirm bool) bool {
	if c.mode == GameModeNetworkError {
		back = back || confirm
	}
	if !back || !(c.mode.InSession() || c.mode == GameModeNetworkError) {
		return false
	}
	c.ToMenu()
	return true
}
