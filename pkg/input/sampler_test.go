package input

import (
	"sync"
	"testing"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(t *testing.T) *Sampler {
	s, err := NewSampler(DefaultBindings)
	require.NoError(t, err)
	return s
}

func TestBindings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		bindings Bindings
		wantErr  bool
	}{
		{
			name:     "default bindings",
			bindings: DefaultBindings,
		},
		{
			name: "overlapping key",
			bindings: Bindings{
				P1: Binding{Left: KeyArrowLeft, Right: KeyArrowRight, Jump: KeyW},
				P2: Binding{Left: KeyA, Right: KeyD, Jump: KeyW},
			},
			wantErr: true,
		},
		{
			name: "same key twice for one player",
			bindings: Bindings{
				P1: Binding{Left: KeyArrowLeft, Right: KeyArrowLeft, Jump: KeyArrowUp},
				P2: DefaultBindings.P2,
			},
			wantErr: true,
		},
		{
			name: "unbound control",
			bindings: Bindings{
				P1: Binding{Left: KeyArrowLeft, Right: KeyArrowRight},
				P2: DefaultBindings.P2,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bindings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSampler_Snapshot(t *testing.T) {
	tests := []struct {
		name        string
		playerCount int
		events      []struct {
			key     Key
			pressed bool
		}
		want gametypes.InputFrame
	}{
		{
			name:        "nothing pressed solo",
			playerCount: 1,
			want:        gametypes.InputFrame{},
		},
		{
			name:        "nothing pressed duo still carries p2",
			playerCount: 2,
			want:        gametypes.InputFrame{P2: &gametypes.ControlState{}},
		},
		{
			name:        "latest event per key wins",
			playerCount: 2,
			events: []struct {
				key     Key
				pressed bool
			}{
				{KeyArrowRight, true},
				{KeyArrowUp, true},
				{KeyArrowUp, false},
				{KeyA, true},
				{KeyW, true},
				{KeyA, false},
				{KeyA, true},
			},
			want: gametypes.InputFrame{
				P1: gametypes.ControlState{Right: true},
				P2: &gametypes.ControlState{Left: true, Jump: true},
			},
		},
		{
			name:        "solo ignores player two keys",
			playerCount: 1,
			events: []struct {
				key     Key
				pressed bool
			}{
				{KeyD, true},
				{KeyArrowLeft, true},
			},
			want: gametypes.InputFrame{P1: gametypes.ControlState{Left: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSampler(t)
			for _, e := range tt.events {
				s.SetPressed(e.key, e.pressed)
			}
			assert.Equal(t, tt.want, s.Snapshot(tt.playerCount))
		})
	}
}

func TestSampler_snapshotIsImmutable(t *testing.T) {
	s := newTestSampler(t)
	s.SetPressed(KeyD, true)
	frame := s.Snapshot(2)

	s.SetPressed(KeyD, false)
	s.SetPressed(KeyArrowLeft, true)

	assert.True(t, frame.P2.Right)
	assert.False(t, frame.P1.Left)
}

func TestSampler_ReleaseAll(t *testing.T) {
	s := newTestSampler(t)
	s.SetPressed(KeyArrowLeft, true)
	s.SetPressed(KeyW, true)

	s.ReleaseAll()

	assert.Equal(t, gametypes.InputFrame{P2: &gametypes.ControlState{}}, s.Snapshot(2))
}

func TestSampler_concurrentWriters(t *testing.T) {
	s := newTestSampler(t)
	var wg sync.WaitGroup
	for _, k := range s.Keys() {
		wg.Add(1)
		go func(k Key) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.SetPressed(k, i%2 == 0)
				_ = s.Snapshot(2)
			}
		}(k)
	}
	wg.Wait()

	// every writer finished on a release
	assert.Equal(t, gametypes.InputFrame{P2: &gametypes.ControlState{}}, s.Snapshot(2))
}

func TestSampler_Keys(t *testing.T) {
	s := newTestSampler(t)
	assert.Equal(t, []Key{KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyA, KeyD, KeyW}, s.Keys())
}
