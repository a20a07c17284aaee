package state

import (
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

// Reader provides read-only access to the latest world state.
// Implementations must be thread-safe.
type Reader interface {
	// Current returns the latest world state, or nil before the first tick response.
	Current() *gametypes.WorldState
}
