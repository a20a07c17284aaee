package render

import (
	"image/color"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/fonts"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Renderer paints world states. It never modifies the state it is given.
type Renderer struct {
	options view.Options
}

type NewRendererOptions struct {
	Width       int
	Height      int
	PlayerCount int
}

func NewRenderer(opts NewRendererOptions) *Renderer {
	return &Renderer{
		options: view.Options{
			Width:       opts.Width,
			Height:      opts.Height,
			PlayerCount: opts.PlayerCount,
		},
	}
}

// Draw paints ws onto screen. A nil ws draws the empty background.
func (r *Renderer) Draw(screen *ebiten.Image, ws *gametypes.WorldState) {
	for _, s := range view.Build(ws, r.options) {
		drawShape(screen, s)
	}
}

func drawShape(screen *ebiten.Image, s view.Shape) {
	switch s.Kind {
	case view.ShapeRect:
		vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color, false)
	case view.ShapeCircle:
		vector.DrawFilledCircle(screen, s.X, s.Y, s.R, s.Color, true)
	case view.ShapeLine:
		vector.StrokeLine(screen, s.X, s.Y, s.X+s.W, s.Y+s.H, 1, s.Color, false)
	case view.ShapeText:
		f := face(s.Font)
		x := int(s.X)
		if s.Centered {
			bounds, _ := font.BoundString(f, s.Text)
			x -= (bounds.Max.X - bounds.Min.X).Ceil() / 2
		}
		text.Draw(screen, s.Text, f, x, int(s.Y), s.Color)
	}
}

func face(size view.FontSize) font.Face {
	switch size {
	case view.FontLarge:
		return fonts.TTFLargeFont
	case view.FontNormal:
		return fonts.TTFNormalFont
	}
	return fonts.TTFSmallFont
}

// DrawCenteredText draws a line of text centered horizontally with its baseline at y.
func DrawCenteredText(screen *ebiten.Image, s string, size view.FontSize, y int, clr color.NRGBA) {
	drawShape(screen, view.Shape{
		Kind:     view.ShapeText,
		X:        float32(screen.Bounds().Dx()) / 2,
		Y:        float32(y),
		Text:     s,
		Color:    clr,
		Font:     size,
		Centered: true,
	})
}
