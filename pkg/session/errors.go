package session

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyActive is returned by Start while another session is starting or active.
	ErrAlreadyActive = errors.New("session already active")
	// ErrInvalidPlayerCount is returned by Start for a player count other than 1 or 2.
	ErrInvalidPlayerCount = errors.New("player count must be 1 or 2")
	// ErrInvalidLevel is returned by Start for a non-positive level.
	ErrInvalidLevel = errors.New("level must be positive")
	// ErrStartCancelled is the cause of a StartFailedError when Teardown ran before the start completed.
	ErrStartCancelled = errors.New("start cancelled by teardown")
)

// StartFailedError is returned when the authority did not create a session.
type StartFailedError struct {
	Cause error
}

func (e *StartFailedError) Error() string {
	return fmt.Sprintf("failed to start game: %v", e.Cause)
}

func (e *StartFailedError) Unwrap() error {
	return e.Cause
}

func IsStartFailed(err error) bool {
	var startErr *StartFailedError
	return errors.As(err, &startErr)
}
