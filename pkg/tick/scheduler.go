package tick

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/queue"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/state"
	"github.com/google/uuid"
)

const (
	DefaultInterval = 33 * time.Millisecond
	DefaultTimeout  = 2 * time.Second
)

// RenderFunc draws a world state snapshot. worldState is nil before the first
// tick response of a session.
type RenderFunc func(worldState *gametypes.WorldState)

// Sessions is the part of session.Manager the scheduler drives.
type Sessions interface {
	Running() (session.Session, context.Context, bool)
	Apply(s session.Session, worldState *gametypes.WorldState) (applied bool, won bool)
	Store() state.Reader
}

// InputSource produces the input frame for a tick.
type InputSource interface {
	Snapshot(playerCount int) gametypes.InputFrame
}

type tickResult struct {
	session    session.Session
	worldState *gametypes.WorldState
	err        error
}

// Scheduler renders on every frame and exchanges input for world state at
// most once per interval, with at most one request outstanding per session.
// Frame must be called from a single goroutine.
type Scheduler struct {
	sessions  Sessions
	input     InputSource
	authority authority.Authority
	interval  time.Duration
	timeout   time.Duration
	results   queue.Queue[*tickResult]
	metrics   *Metrics
	onWin     func(worldState *gametypes.WorldState)

	lock     sync.Mutex
	inFlight map[uuid.UUID]struct{}

	// touched only by Frame
	lastTick            time.Time
	lastHandle          uuid.UUID
	consecutiveFailures int
	lastErr             error

	wg sync.WaitGroup
}

type NewSchedulerOptions struct {
	Sessions  Sessions
	Input     InputSource
	Authority authority.Authority
	// Interval is the minimum time between ticks. Defaults to DefaultInterval.
	Interval time.Duration
	// Timeout bounds each input request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// OnWin is called from Frame once, with the winning world state.
	OnWin func(worldState *gametypes.WorldState)
}

func NewScheduler(opts NewSchedulerOptions) (*Scheduler, error) {
	if opts.Sessions == nil {
		return nil, fmt.Errorf("sessions are required")
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("input source is required")
	}
	if opts.Authority == nil {
		return nil, fmt.Errorf("authority is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scheduler{
		sessions:  opts.Sessions,
		input:     opts.Input,
		authority: opts.Authority,
		interval:  interval,
		timeout:   timeout,
		results:   queue.NewInMemoryQueue[*tickResult](queue.DefaultQueueSize),
		metrics:   &Metrics{},
		onWin:     opts.OnWin,
		inFlight:  make(map[uuid.UUID]struct{}),
	}, nil
}

// Frame runs one display frame: it applies finished ticks, renders the
// current snapshot and issues a new tick when one is due. It never waits on
// the network.
func (s *Scheduler) Frame(now time.Time, render RenderFunc) {
	s.metrics.incFrames()
	s.drain()

	if render != nil {
		render(s.sessions.Store().Current())
	}

	s.maybeTick(now)
}

func (s *Scheduler) drain() {
	for _, result := range s.results.ReadAll() {
		s.release(result.session)
		if result.err != nil {
			s.handleFailure(result)
			continue
		}

		applied, won := s.sessions.Apply(result.session, result.worldState)
		if !applied {
			s.metrics.incStaleDiscarded()
			log.Debug("Discarding stale tick response for session %s", result.session.ID)
			continue
		}
		s.metrics.incApplied()
		s.consecutiveFailures = 0
		s.lastErr = nil
		if won && s.onWin != nil {
			s.onWin(result.worldState)
		}
	}
}

func (s *Scheduler) handleFailure(result *tickResult) {
	current, _, ok := s.sessions.Running()
	if !ok || !current.Is(result.session) {
		s.metrics.incStaleDiscarded()
		log.Debug("Discarding stale tick failure for session %s: %v", result.session.ID, result.err)
		return
	}
	s.metrics.incFailed()
	s.consecutiveFailures++
	s.lastErr = &TickFailedError{SessionID: result.session.ID, Cause: result.err}
	log.Warn("%v", s.lastErr)
}

func (s *Scheduler) maybeTick(now time.Time) {
	current, ctx, ok := s.sessions.Running()
	if !ok {
		return
	}

	if current.Handle != s.lastHandle {
		s.lastHandle = current.Handle
		s.lastTick = time.Time{}
		s.consecutiveFailures = 0
		s.lastErr = nil
	}

	if !s.lastTick.IsZero() && now.Sub(s.lastTick) <= s.interval {
		return
	}

	s.lock.Lock()
	if _, busy := s.inFlight[current.Handle]; busy {
		s.lock.Unlock()
		s.metrics.incSkippedInFlight()
		return
	}
	s.inFlight[current.Handle] = struct{}{}
	s.lock.Unlock()

	s.lastTick = now
	req := &authority.InputRequest{
		SessionID: current.ID,
		Inputs:    s.input.Snapshot(current.PlayerCount),
	}
	s.metrics.incIssued()

	s.wg.Add(1)
	go s.send(ctx, current, req)
}

func (s *Scheduler) send(ctx context.Context, current session.Session, req *authority.InputRequest) {
	defer s.wg.Done()

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	worldState, err := s.authority.SendInput(reqCtx, req)
	s.metrics.addRoundTrip(time.Since(start))
	if err == nil && worldState == nil {
		err = fmt.Errorf("%w: empty world state", authority.ErrMalformedResponse)
	}

	// The in-flight mark is released by drain, once the result has been
	// applied, so a response arriving mid-frame still blocks the next tick.
	if qErr := s.results.Enqueue(&tickResult{session: current, worldState: worldState, err: err}); qErr != nil {
		s.metrics.incResultsDropped()
		log.Error("Failed to deliver tick result for session %s: %v", current.ID, qErr)
		s.release(current)
	}
}

func (s *Scheduler) release(current session.Session) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.inFlight, current.Handle)
}

// InFlight reports the number of input requests across sessions whose
// results have not been drained yet.
func (s *Scheduler) InFlight() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.inFlight)
}

// ConsecutiveFailures is the number of failed ticks since the last applied
// response of the running session.
func (s *Scheduler) ConsecutiveFailures() int {
	if !s.tracking() {
		return 0
	}
	return s.consecutiveFailures
}

// LastError is the most recent TickFailedError of the running session, if any.
func (s *Scheduler) LastError() error {
	if !s.tracking() {
		return nil
	}
	return s.lastErr
}

// tracking reports whether the failure bookkeeping belongs to the running session.
func (s *Scheduler) tracking() bool {
	current, _, ok := s.sessions.Running()
	return ok && current.Handle == s.lastHandle
}

func (s *Scheduler) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Wait blocks until every issued request has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
