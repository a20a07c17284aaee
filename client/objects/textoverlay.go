package objects

import (
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/render"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextOverlayObject shows a title with an optional subtitle in the middle of the screen.
type TextOverlayObject struct {
	*BaseObject

	title    string
	subtitle string
}

func NewTextOverlayObject(id string, title string, subtitle string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
		title:      title,
		subtitle:   subtitle,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	render.DrawCenteredText(screen, o.title, view.FontLarge, h/2, view.LabelColor)
	if o.subtitle != "" {
		render.DrawCenteredText(screen, o.subtitle, view.FontNormal, h/2+40, view.HintColor)
	}
}
