package state

import (
	"sync"
	"testing"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestStore_emptyBeforeFirstReplace(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Current())
	assert.Equal(t, uint64(0), s.Version())
}

func TestStore_ReplaceAndClear(t *testing.T) {
	s := NewStore()
	first := &gametypes.WorldState{Players: map[string]*gametypes.PlayerState{gametypes.PlayerOne: {X: 1}}}
	second := &gametypes.WorldState{Win: true}

	s.Replace(first)
	assert.Same(t, first, s.Current())

	s.Replace(second)
	assert.Same(t, second, s.Current())
	assert.Equal(t, uint64(2), s.Version())

	s.Clear()
	assert.Nil(t, s.Current())
	assert.Equal(t, uint64(3), s.Version())
}

func TestStore_readersSeeWholeSnapshots(t *testing.T) {
	s := NewStore()
	states := make([]*gametypes.WorldState, 50)
	for i := range states {
		states[i] = &gametypes.WorldState{
			Players: map[string]*gametypes.PlayerState{
				gametypes.PlayerOne: {X: float64(i), Y: float64(i)},
			},
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, ws := range states {
			s.Replace(ws)
		}
	}()

	for i := 0; i < 200; i++ {
		ws := s.Current()
		if ws == nil {
			continue
		}
		p := ws.Players[gametypes.PlayerOne]
		assert.Equal(t, p.X, p.Y)
	}
	wg.Wait()
	assert.Same(t, states[len(states)-1], s.Current())
}
