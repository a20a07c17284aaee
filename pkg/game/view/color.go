package view

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses #rgb, #rrggbb and #rrggbbaa colors.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mustColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	BackgroundColor      = mustColor("#0f0e17")
	GridColor            = mustColor("#ffffff08")
	TileColor            = mustColor("#4a90d9")
	TileShadowColor      = mustColor("#2a5fa8")
	DoorColor            = mustColor("#8e44ad")
	DoorShadowColor      = mustColor("#5b2c6f")
	PlateInactiveColor   = mustColor("#8e6b00")
	PlateActiveColor     = mustColor("#f1c40f")
	GoalPlateActiveColor = mustColor("#ffd700")
	GoalPlateIdleColor   = mustColor("#7a5200")
	GoalDoorColor        = mustColor("#c0860a")
	GoalDoorShadowColor  = mustColor("#7a5200")
	GoalColor            = mustColor("#2ecc71")
	GoalGlowColor        = mustColor("#2ecc7144")
	HintColor            = mustColor("#ffffff88")
	PlayerOneColor       = mustColor("#e74c3c")
	PlayerTwoColor       = mustColor("#3498db")
	EyeColor             = mustColor("#ffffff")
	PupilColor           = mustColor("#222222")
	LabelColor           = mustColor("#ffffff")
	InkColor             = mustColor("#000000")
)
