// Package view turns a world state into a flat list of shapes. It holds every
// drawing rule and no drawing code, so the client only has to paint shapes.
package view

import (
	"image/color"
	"sort"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 450

	GridSpacing  = 40
	ShadowHeight = 6

	PlayerWidth  = 32
	PlayerHeight = 48

	// labelCharWidth approximates the width of one label character.
	labelCharWidth = 7
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeLine
	ShapeText
)

type FontSize int

const (
	FontSmall FontSize = iota
	FontNormal
	FontLarge
)

// Shape is one drawing primitive.
//   - ShapeRect: X, Y, W, H
//   - ShapeCircle: center X, Y and radius R
//   - ShapeLine: from X, Y to X+W, Y+H
//   - ShapeText: Text with its baseline at Y, starting at X or centered on X
type Shape struct {
	Kind     ShapeKind
	X, Y     float32
	W, H     float32
	R        float32
	Color    color.NRGBA
	Text     string
	Font     FontSize
	Centered bool
}

type Options struct {
	Width       int
	Height      int
	PlayerCount int
}

// Build returns the shapes for ws, back to front. A nil ws yields only the background.
func Build(ws *gametypes.WorldState, opts Options) []Shape {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	b := &builder{}
	b.background(opts.Width, opts.Height)
	if ws == nil {
		return b.shapes
	}

	lvl := ws.Level
	for _, tile := range lvl.Tiles {
		b.tile(tile, TileColor, TileShadowColor)
	}

	// doors vanish entirely once opened
	if !lvl.DoorsOpen {
		for _, door := range lvl.Doors {
			b.tile(door, DoorColor, DoorShadowColor)
			b.text(float32(door.X+door.W/2), float32(door.Y+door.H/2+4), "X", LabelColor, FontSmall, true)
		}
	}

	for _, plate := range lvl.PressurePlates {
		if !plate.Triggered {
			b.pressurePlate(plate)
		}
	}

	if lvl.GoalPlate != nil && !lvl.GoalPlate.Triggered {
		b.goalPlate(*lvl.GoalPlate)
	}
	for _, plate := range lvl.GoalPlates {
		if !plate.Triggered {
			b.goalPlate(plate)
		}
	}

	if lvl.GoalLocked {
		if lvl.GoalDoor != nil {
			b.goalDoor(*lvl.GoalDoor)
		}
	} else {
		b.goal(lvl.Goal)
	}

	ids := make([]string, 0, len(ws.Players))
	for id := range ws.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if p := ws.Players[id]; p != nil {
			b.player(id, p)
		}
	}

	if hint := Hint(ws, opts.PlayerCount); hint != "" {
		b.text(12, 24, hint, HintColor, FontSmall, false)
	}

	return b.shapes
}

// Hint is the contextual help line for the current puzzle step.
func Hint(ws *gametypes.WorldState, playerCount int) string {
	if ws == nil {
		return ""
	}
	duo := playerCount >= 2
	switch {
	case !ws.Level.DoorsOpen:
		if duo {
			return "Both players must stand on the yellow plates at the same time!"
		}
		return "Step on the yellow plate to open the door!"
	case ws.Level.GoalLocked:
		if duo {
			return "Both players must stand on their * plate at the same time!"
		}
		return "Find the * plate to reveal the goal!"
	}
	return ""
}

// PlayerLabel is the short name drawn for a player ID.
func PlayerLabel(id string) string {
	if id == gametypes.PlayerOne {
		return "P1"
	}
	return "P2"
}

func playerColor(id string) color.NRGBA {
	if id == gametypes.PlayerOne {
		return PlayerOneColor
	}
	return PlayerTwoColor
}

type builder struct {
	shapes []Shape
}

func (b *builder) rect(x, y, w, h float64, c color.NRGBA) {
	b.shapes = append(b.shapes, Shape{Kind: ShapeRect, X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

func (b *builder) circle(x, y, r float64, c color.NRGBA) {
	b.shapes = append(b.shapes, Shape{Kind: ShapeCircle, X: float32(x), Y: float32(y), R: float32(r), Color: c})
}

func (b *builder) text(x, y float32, s string, c color.NRGBA, font FontSize, centered bool) {
	b.shapes = append(b.shapes, Shape{Kind: ShapeText, X: x, Y: y, Text: s, Color: c, Font: font, Centered: centered})
}

func (b *builder) background(width, height int) {
	b.rect(0, 0, float64(width), float64(height), BackgroundColor)
	for x := 0; x < width; x += GridSpacing {
		b.shapes = append(b.shapes, Shape{Kind: ShapeLine, X: float32(x), H: float32(height), Color: GridColor})
	}
	for y := 0; y < height; y += GridSpacing {
		b.shapes = append(b.shapes, Shape{Kind: ShapeLine, Y: float32(y), W: float32(width), Color: GridColor})
	}
}

// tile draws r with a darker strip along its bottom edge.
func (b *builder) tile(r gametypes.Rect, body, shadow color.NRGBA) {
	if r.H <= ShadowHeight {
		b.rect(r.X, r.Y, r.W, r.H, body)
		return
	}
	b.rect(r.X, r.Y+r.H-ShadowHeight, r.W, ShadowHeight, shadow)
	b.rect(r.X, r.Y, r.W, r.H-ShadowHeight, body)
}

func (b *builder) pressurePlate(p gametypes.Plate) {
	fill := PlateInactiveColor
	if p.Active {
		fill = PlateActiveColor
	}
	b.rect(p.X, p.Y, p.W, p.H, fill)

	cx := float32(p.X + p.W/2)
	if p.Duo && p.Player != "" {
		ink := playerColor(p.Player)
		if p.Active {
			ink = InkColor
		}
		b.text(cx, float32(p.Y+7), PlayerLabel(p.Player), ink, FontSmall, true)
		return
	}
	b.text(cx, float32(p.Y+8), "v", InkColor, FontSmall, true)
}

func (b *builder) goalPlate(p gametypes.Plate) {
	fill := GoalPlateIdleColor
	if p.Active {
		fill = GoalPlateActiveColor
	}
	b.rect(p.X, p.Y, p.W, p.H, fill)

	cx := float32(p.X + p.W/2)
	if p.Player != "" {
		ink := playerColor(p.Player)
		if p.Active {
			ink = InkColor
		}
		b.text(cx, float32(p.Y+7), PlayerLabel(p.Player)+"*", ink, FontSmall, true)
		return
	}
	ink := LabelColor
	if p.Active {
		ink = InkColor
	}
	b.text(cx, float32(p.Y+8), "*", ink, FontSmall, true)
}

func (b *builder) goalDoor(r gametypes.Rect) {
	b.tile(r, GoalDoorColor, GoalDoorShadowColor)
	for y := r.Y + 20; y < r.Y+r.H-10; y += 36 {
		b.text(float32(r.X+r.W/2), float32(y), "*", LabelColor, FontSmall, true)
	}
}

func (b *builder) goal(r gametypes.Rect) {
	b.rect(r.X-10, r.Y-10, r.W+20, r.H+20, GoalGlowColor)
	b.rect(r.X, r.Y, r.W, r.H, GoalColor)
	b.text(float32(r.X+r.W/2), float32(r.Y+r.H/2+4), "GOAL", LabelColor, FontSmall, true)
}

func (b *builder) player(id string, p *gametypes.PlayerState) {
	body, err := ParseHexColor(p.Color)
	if err != nil {
		body = playerColor(id)
	}

	b.rect(p.X, p.Y+12, PlayerWidth, PlayerHeight-12, body)
	b.circle(p.X+PlayerWidth/2, p.Y+12, 14, body)

	b.circle(p.X+10, p.Y+10, 5, EyeColor)
	b.circle(p.X+22, p.Y+10, 5, EyeColor)
	b.circle(p.X+11, p.Y+10, 2.5, PupilColor)
	b.circle(p.X+23, p.Y+10, 2.5, PupilColor)

	label := PlayerLabel(id)
	tw := float64(len(label) * labelCharWidth)
	b.rect(p.X+PlayerWidth/2-tw/2-4, p.Y-22, tw+8, 16, body)
	b.text(float32(p.X+PlayerWidth/2), float32(p.Y-10), label, LabelColor, FontSmall, true)
}
