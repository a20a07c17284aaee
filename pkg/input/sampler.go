package input

import (
	"fmt"
	"sync"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

// Key identifies a physical key by its code, e.g. "ArrowLeft" or "KeyA".
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyA          Key = "KeyA"
	KeyD          Key = "KeyD"
	KeyW          Key = "KeyW"
)

// Binding maps one player's controls to keys.
type Binding struct {
	Left  Key
	Right Key
	Jump  Key
}

func (b Binding) keys() []Key {
	return []Key{b.Left, b.Right, b.Jump}
}

// Bindings holds the two independent control sets.
type Bindings struct {
	P1 Binding
	P2 Binding
}

// DefaultBindings binds player one to the arrow keys and player two to WASD.
var DefaultBindings = Bindings{
	P1: Binding{Left: KeyArrowLeft, Right: KeyArrowRight, Jump: KeyArrowUp},
	P2: Binding{Left: KeyA, Right: KeyD, Jump: KeyW},
}

// Validate checks that every control is bound and that no key is bound twice.
func (b Bindings) Validate() error {
	seen := make(map[Key]string)
	for player, binding := range map[string]Binding{gametypes.PlayerOne: b.P1, gametypes.PlayerTwo: b.P2} {
		for _, k := range binding.keys() {
			if k == "" {
				return fmt.Errorf("%s has an unbound control", player)
			}
			if other, ok := seen[k]; ok {
				return fmt.Errorf("key %s is bound for both %s and %s", k, other, player)
			}
			seen[k] = player
		}
	}
	return nil
}

// Sampler tracks the pressed state of keys. SetPressed may be called from any
// goroutine at any rate; Snapshot reads whatever state is current.
type Sampler struct {
	bindings Bindings

	lock    sync.RWMutex
	pressed map[Key]bool
}

func NewSampler(bindings Bindings) (*Sampler, error) {
	if err := bindings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bindings: %v", err)
	}
	return &Sampler{
		bindings: bindings,
		pressed:  make(map[Key]bool),
	}, nil
}

// SetPressed records the latest state of a key. Unbound keys are tracked too.
func (s *Sampler) SetPressed(k Key, pressed bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.pressed[k] = pressed
}

func (s *Sampler) Pressed(k Key) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.pressed[k]
}

// ReleaseAll marks every key as released.
func (s *Sampler) ReleaseAll() {
	s.lock.Lock()
	defer s.lock.Unlock()
	clear(s.pressed)
}

// Keys returns every bound key, player one first.
func (s *Sampler) Keys() []Key {
	return append(s.bindings.P1.keys(), s.bindings.P2.keys()...)
}

func (s *Sampler) Bindings() Bindings {
	return s.bindings
}

// Snapshot builds an input frame from the current key state. Player two's keys
// are only read when playerCount is 2.
func (s *Sampler) Snapshot(playerCount int) gametypes.InputFrame {
	s.lock.RLock()
	defer s.lock.RUnlock()

	frame := gametypes.InputFrame{
		P1: s.controlState(s.bindings.P1),
	}
	if playerCount == 2 {
		p2 := s.controlState(s.bindings.P2)
		frame.P2 = &p2
	}
	return frame
}

func (s *Sampler) controlState(b Binding) gametypes.ControlState {
	return gametypes.ControlState{
		Left:  s.pressed[b.Left],
		Right: s.pressed[b.Right],
		Jump:  s.pressed[b.Jump],
	}
}
