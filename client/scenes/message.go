package scenes

import (
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/objects"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MessageScene shows a centered message, e.g. while starting or after a network error.
type MessageScene struct {
	*BaseScene
}

var _ Scene = &MessageScene{}

func NewMessageScene(title string, subtitle string) (Scene, error) {
	return &MessageScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-message", title, subtitle)),
	}, nil
}

func (s *MessageScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), view.BackgroundColor, false)
	s.BaseScene.Draw(screen)
}
