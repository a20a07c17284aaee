package objects

import (
	"fmt"
	"strings"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/fonts"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/view"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUDObject shows the level and the controls along the bottom edge.
type HUDObject struct {
	*BaseObject

	line string
}

type NewHUDObjectOptions struct {
	Level       int
	PlayerCount int
	Bindings    input.Bindings
}

func NewHUDObject(id string, opts NewHUDObjectOptions) *HUDObject {
	parts := []string{
		fmt.Sprintf("Level %d", opts.Level),
		"P1: " + describe(opts.Bindings.P1),
	}
	// player two's controls are only relevant in duo mode
	if opts.PlayerCount == 2 {
		parts = append(parts, "P2: "+describe(opts.Bindings.P2))
	}
	parts = append(parts, "Esc: menu")

	return &HUDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		line:       strings.Join(parts, "   "),
	}
}

func describe(b input.Binding) string {
	name := func(k input.Key) string {
		s := string(k)
		s = strings.TrimPrefix(s, "Key")
		return strings.TrimPrefix(s, "Arrow")
	}
	return fmt.Sprintf("%s/%s/%s", name(b.Left), name(b.Right), name(b.Jump))
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	text.Draw(screen, o.line, fonts.TTFSmallFont, 12, screen.Bounds().Dy()-12, view.HintColor)
}
