package scenes

import (
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/fonts"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/objects"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type MenuScene struct {
	*BaseScene

	onStart   func(playerCount int)
	hasPlayed bool
	ui        *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnStart is called with 1 or 2 when a mode button is pressed.
	OnStart func(playerCount int)
	// HasPlayed changes the greeting for returning players.
	HasPlayed bool
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:   opts.OnStart,
		hasPlayed: opts.HasPlayed,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	rootContainer := newColumn(110)

	rootContainer.AddChild(newLabel("Puzzle Platformer", fonts.TTFLargeFont, view.LabelColor))

	greeting := "Open the doors and reach the goal together"
	if s.hasPlayed {
		greeting = "Welcome back!"
	}
	rootContainer.AddChild(newLabel(greeting, fonts.TTFSmallFont, view.HintColor))

	rootContainer.AddChild(newButton("Solo", func() { s.onStart(1) }))
	rootContainer.AddChild(newButton("Duo", func() { s.onStart(2) }))

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), view.BackgroundColor, false)
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
