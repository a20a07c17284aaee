package ui

import (
	"context"
	"errors"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
)

// ActionableError carries a message meant for the player.
type ActionableError struct {
	Message string
	Cause   error
}

func (e *ActionableError) Error() string {
	return e.Message
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Explain wraps err with a message the player can act on.
func Explain(err error) *ActionableError {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable
	}

	msg := "Could not reach the game server. Press Enter to return to the menu."
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg = "The game server is not responding. Press Enter to return to the menu."
	case authority.IsSessionNotFound(err):
		msg = "The game session has expired. Press Enter to return to the menu."
	case errors.Is(err, authority.ErrMalformedResponse):
		msg = "The game server sent an unexpected reply. Press Enter to return to the menu."
	}
	return &ActionableError{Message: msg, Cause: err}
}
