package game

import (
	"context"
	"fmt"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/flow"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/input"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/scenes"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/sound"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/ui"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	pkginput "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/repositories"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/tick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// FireLevel plays the fire ambience while it runs.
	FireLevel = 3
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sessions owns the session, its run phase and the world state.
	sessions *session.Manager
	// scheduler issues ticks and renders frames while a level is shown.
	scheduler *tick.Scheduler
	// poller feeds keyboard state into the sampler.
	poller   *input.Poller
	bindings pkginput.Bindings
	sound    *sound.Player
	profile  repositories.Repository

	maxLevel int

	// flow decides the current game mode.
	flow *flow.Controller
	// scene is the current scene.
	scene  scenes.Scene
	phases session.PhaseTracker

	// pending is a navigation requested from inside a scene update.
	pending func() error
}

type NewGameOptions struct {
	Debug     bool
	Sessions  *session.Manager
	Scheduler *tick.Scheduler
	Sampler   *pkginput.Sampler
	Sound     *sound.Player
	// Profile is read for the menu greeting. Optional.
	Profile         repositories.Repository
	MaxLevel        int
	MaxTickFailures int
	// AutoStartMode skips the menu and starts a game right away when non-zero.
	AutoStartMode  int
	AutoStartLevel int
}

func NewGame(opts NewGameOptions) (*Game, error) {
	poller, err := input.NewPoller(opts.Sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to create input poller: %v", err)
	}

	controller, err := flow.NewController(flow.NewControllerOptions{
		Sessions:        opts.Sessions,
		Health:          opts.Scheduler,
		MaxTickFailures: opts.MaxTickFailures,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create flow controller: %v", err)
	}

	g := &Game{
		debug:     opts.Debug,
		sessions:  opts.Sessions,
		scheduler: opts.Scheduler,
		poller:    poller,
		bindings:  opts.Sampler.Bindings(),
		sound:     opts.Sound,
		profile:   opts.Profile,
		maxLevel:  opts.MaxLevel,
		flow:      controller,
	}

	if opts.AutoStartMode != 0 {
		if err := g.startGame(opts.AutoStartMode, opts.AutoStartLevel); err != nil {
			return nil, fmt.Errorf("failed to start game: %v", err)
		}
		return g, nil
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	g.flow.ToMenu()

	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart: func(playerCount int) {
			g.sound.Play(sound.CueClick)
			g.pending = func() error {
				return g.startGame(playerCount, 1)
			}
		},
		HasPlayed: g.hasPlayed(),
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	return nil
}

func (g *Game) hasPlayed() bool {
	if g.profile == nil {
		return false
	}
	played, err := g.profile.HasPlayed(context.Background())
	if err != nil {
		log.Warn("Failed to read play history: %v", err)
		return false
	}
	return played
}

// startGame shows the starting scene while a new session starts in the
// background. The result is picked up by Update.
func (g *Game) startGame(playerCount int, level int) error {
	g.flow.StartGame(playerCount, level)

	starting, err := scenes.NewMessageScene("Starting...", fmt.Sprintf("Level %d", level))
	if err != nil {
		return fmt.Errorf("failed to create starting scene: %v", err)
	}
	if err := g.SetScene(starting); err != nil {
		return fmt.Errorf("failed to set starting scene: %v", err)
	}
	return nil
}

func (g *Game) receiveStart() error {
	result, ok := g.flow.PollStart()
	if !ok {
		return nil
	}
	if result.Err != nil {
		return g.loadNetworkError(result.Err)
	}
	return g.loadGame(result.Session)
}

func (g *Game) loadGame(s session.Session) error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Phases:       g.sessions,
		Scheduler:    g.scheduler,
		Session:      s,
		Bindings:     g.bindings,
		Width:        view.DefaultWidth,
		Height:       view.DefaultHeight,
		HasNextLevel: s.Level < g.maxLevel,
		OnNextLevel: func() {
			g.sound.Play(sound.CueClick)
			g.pending = func() error {
				return g.startGame(s.PlayerCount, s.Level+1)
			}
		},
		OnMenu: func() {
			g.sound.Play(sound.CueClick)
			g.pending = g.loadMenu
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	return nil
}

// loadNetworkError shows cause. The flow controller has already torn the
// session down.
func (g *Game) loadNetworkError(cause error) error {
	explained := ui.Explain(cause)
	networkError, err := scenes.NewMessageScene("Network Error", explained.Message)
	if err != nil {
		return fmt.Errorf("failed to create network error scene: %v", err)
	}
	if err := g.SetScene(networkError); err != nil {
		return fmt.Errorf("failed to set network error scene: %v", err)
	}
	return nil
}

func (g *Game) Update() error {
	g.poller.Poll()

	if err := g.receiveStart(); err != nil {
		return fmt.Errorf("failed to receive start result: %v", err)
	}

	g.reactToPhase()

	if cause := g.flow.CheckTicks(); cause != nil {
		if err := g.loadNetworkError(cause); err != nil {
			return fmt.Errorf("failed to load network error scene: %v", err)
		}
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.pending != nil {
		next := g.pending
		g.pending = nil
		if err := next(); err != nil {
			return fmt.Errorf("failed to navigate: %v", err)
		}
	}

	return nil
}

// reactToPhase plays sounds for run phase changes.
func (g *Game) reactToPhase() {
	tr, ok := g.phases.Observe(g.sessions.Phase())
	if !ok {
		return
	}
	log.Debug("Run phase %s -> %s", tr.From, tr.To)

	switch tr.To {
	case session.RunPhaseRunning:
		if s, ok := g.sessions.Current(); ok && s.Level == FireLevel {
			g.sound.Play(sound.CueFire)
		}
	case session.RunPhaseWon:
		g.sound.Stop(sound.CueFire)
		g.sound.Play(sound.CueWin)
	default:
		g.sound.Stop(sound.CueFire)
	}
}

func (g *Game) handleInput() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	if g.flow.Back(input.IsNegativeJustPressed(), input.IsPositiveJustPressed()) {
		if err := g.loadMenu(); err != nil {
			return fmt.Errorf("failed to load menu scene: %v", err)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	m := g.scheduler.Metrics()
	lines := fmt.Sprintf("\n   FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	lines += fmt.Sprintf("\n   Mode: %s  Phase: %s", g.flow.Mode(), g.sessions.Phase())
	if s, ok := g.sessions.Current(); ok {
		lines += fmt.Sprintf("\n   Session: %s  Level: %d  Players: %d", s.ID, s.Level, s.PlayerCount)
	}
	lines += fmt.Sprintf("\n   Ticks: %d sent, %d applied, %d failed, %d stale", m.TicksIssued, m.TicksApplied, m.TicksFailed, m.StaleDiscarded)
	lines += fmt.Sprintf("\n   In flight: %d  Skipped: %d  RTT: %s", g.scheduler.InFlight(), m.SkippedInFlight, m.AvgRoundTrip)
	ebitenutil.DebugPrint(screen, lines)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return view.DefaultWidth, view.DefaultHeight
}

// Shutdown tears down the session and waits for outstanding ticks.
func (g *Game) Shutdown() {
	g.sessions.Teardown()
	g.scheduler.Wait()
	g.sound.StopAll()
}
