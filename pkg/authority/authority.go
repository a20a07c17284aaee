package authority

import (
	"context"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

const (
	StartGamePath = "/api/start_game"
	InputPath     = "/api/input"
)

// Authority is the remote service that owns the simulation.
type Authority interface {
	// StartGame creates a session on the authority.
	StartGame(ctx context.Context, req *StartGameRequest) (*StartGameResponse, error)
	// SendInput submits one tick of input and returns the resulting world state.
	SendInput(ctx context.Context, req *InputRequest) (*gametypes.WorldState, error)
}

type StartGameRequest struct {
	// Mode is the number of players, 1 or 2.
	Mode  int `json:"mode"`
	Level int `json:"level"`
}

type StartGameResponse struct {
	SessionID gametypes.SessionID `json:"session_id"`
}

type InputRequest struct {
	SessionID gametypes.SessionID  `json:"session_id"`
	Inputs    gametypes.InputFrame `json:"inputs"`
}
