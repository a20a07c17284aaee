package input

import (
	"fmt"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle keyboard, mouse, touch and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			// The button 0 might not be the A button.
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsDebugJustPressed toggles the debug overlay.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Poller copies ebiten keyboard state into a sampler once per update.
type Poller struct {
	sampler *input.Sampler
	keys    map[input.Key]ebiten.Key
}

func NewPoller(sampler *input.Sampler) (*Poller, error) {
	keys := make(map[input.Key]ebiten.Key)
	for _, k := range sampler.Keys() {
		ek, ok := KeyCode(k)
		if !ok {
			return nil, fmt.Errorf("unsupported key %q", k)
		}
		keys[k] = ek
	}
	return &Poller{
		sampler: sampler,
		keys:    keys,
	}, nil
}

// Poll records the pressed state of every bound key.
func (p *Poller) Poll() {
	for k, ek := range p.keys {
		p.sampler.SetPressed(k, ebiten.IsKeyPressed(ek))
	}
}

// KeyCode maps a key code such as "ArrowLeft", "KeyA" or "Digit1" to an ebiten key.
func KeyCode(k input.Key) (ebiten.Key, bool) {
	ek, ok := keyCodes[k]
	return ek, ok
}

var keyCodes = map[input.Key]ebiten.Key{
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"Space":      ebiten.KeySpace,
	"ShiftLeft":  ebiten.KeyShiftLeft,
	"ShiftRight": ebiten.KeyShiftRight,
	"Enter":      ebiten.KeyEnter,
	"KeyA":       ebiten.KeyA,
	"KeyB":       ebiten.KeyB,
	"KeyC":       ebiten.KeyC,
	"KeyD":       ebiten.KeyD,
	"KeyE":       ebiten.KeyE,
	"KeyF":       ebiten.KeyF,
	"KeyG":       ebiten.KeyG,
	"KeyH":       ebiten.KeyH,
	"KeyI":       ebiten.KeyI,
	"KeyJ":       ebiten.KeyJ,
	"KeyK":       ebiten.KeyK,
	"KeyL":       ebiten.KeyL,
	"KeyM":       ebiten.KeyM,
	"KeyN":       ebiten.KeyN,
	"KeyO":       ebiten.KeyO,
	"KeyP":       ebiten.KeyP,
	"KeyQ":       ebiten.KeyQ,
	"KeyR":       ebiten.KeyR,
	"KeyS":       ebiten.KeyS,
	"KeyT":       ebiten.KeyT,
	"KeyU":       ebiten.KeyU,
	"KeyV":       ebiten.KeyV,
	"KeyW":       ebiten.KeyW,
	"KeyX":       ebiten.KeyX,
	"KeyY":       ebiten.KeyY,
	"KeyZ":       ebiten.KeyZ,
	"Digit0":     ebiten.KeyDigit0,
	"Digit1":     ebiten.KeyDigit1,
	"Digit2":     ebiten.KeyDigit2,
	"Digit3":     ebiten.KeyDigit3,
	"Digit4":     ebiten.KeyDigit4,
	"Digit5":     ebiten.KeyDigit5,
	"Digit6":     ebiten.KeyDigit6,
	"Digit7":     ebiten.KeyDigit7,
	"Digit8":     ebiten.KeyDigit8,
	"Digit9":     ebiten.KeyDigit9,
}
