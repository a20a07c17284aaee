package scenes

import (
	"fmt"
	"image/color"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/fonts"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/objects"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/render"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/session"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/tick"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var winBackdropColor = color.NRGBA{R: 0x0f, G: 0x0e, B: 0x17, A: 0xcc}

// PhaseSource reports the current run phase.
type PhaseSource interface {
	Phase() session.RunPhase
}

// GameScene shows the running level and, once it is won, the win overlay.
type GameScene struct {
	*BaseScene

	phases       PhaseSource
	scheduler    *tick.Scheduler
	session      session.Session
	bindings     input.Bindings
	width        int
	height       int
	hasNextLevel bool
	onNextLevel  func()
	onMenu       func()

	won bool
	ui  *ebitenui.UI
}

type GameSceneOptions struct {
	Phases    PhaseSource
	Scheduler *tick.Scheduler
	Session   session.Session
	Bindings  input.Bindings
	Width     int
	Height    int
	// HasNextLevel shows the "Next Level" button on the win overlay.
	HasNextLevel bool
	OnNextLevel  func()
	OnMenu       func()
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (Scene, error) {
	if opts.Phases == nil || opts.Scheduler == nil {
		return nil, fmt.Errorf("phases and scheduler are required")
	}
	return &GameScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("game-root", nil)),
		phases:       opts.Phases,
		scheduler:    opts.Scheduler,
		session:      opts.Session,
		bindings:     opts.Bindings,
		width:        opts.Width,
		height:       opts.Height,
		hasNextLevel: opts.HasNextLevel,
		onNextLevel:  opts.OnNextLevel,
		onMenu:       opts.OnMenu,
	}, nil
}

func (s *GameScene) Init() error {
	world := objects.NewWorldObject("world", objects.NewWorldObjectOptions{
		Scheduler: s.scheduler,
		Renderer: render.NewRenderer(render.NewRendererOptions{
			Width:       s.width,
			Height:      s.height,
			PlayerCount: s.session.PlayerCount,
		}),
	})
	if err := s.Add(world); err != nil {
		return fmt.Errorf("failed to add world: %v", err)
	}

	hud := objects.NewHUDObject("hud", objects.NewHUDObjectOptions{
		Level:       s.session.Level,
		PlayerCount: s.session.PlayerCount,
		Bindings:    s.bindings,
	})
	if err := s.Add(hud); err != nil {
		return fmt.Errorf("failed to add hud: %v", err)
	}

	return s.BaseScene.Init()
}

func (s *GameScene) Update() error {
	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	if !s.won && s.phases.Phase() == session.RunPhaseWon {
		s.won = true
		s.renderWinUI()
	}
	if s.ui != nil {
		s.ui.Update()
	}
	return nil
}

func (s *GameScene) renderWinUI() {
	rootContainer := newColumn(130)
	rootContainer.AddChild(newLabel("Level Complete!", fonts.TTFLargeFont, view.GoalColor))
	if s.hasNextLevel {
		rootContainer.AddChild(newButton("Next Level", s.onNextLevel))
	}
	rootContainer.AddChild(newButton("Menu", s.onMenu))

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	if s.ui == nil {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), winBackdropColor, false)
	s.ui.Draw(screen)
}
