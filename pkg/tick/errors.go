package tick

import (
	"errors"
	"fmt"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
)

// TickFailedError reports an input request that did not produce a world state.
// The session keeps running and the next interval retries.
type TickFailedError struct {
	SessionID gametypes.SessionID
	Cause     error
}

func (e *TickFailedError) Error() string {
	return fmt.Sprintf("tick for session %s failed: %v", e.SessionID, e.Cause)
}

func (e *TickFailedError) Unwrap() error {
	return e.Cause
}

func IsTickFailed(err error) bool {
	var tickErr *TickFailedError
	return errors.As(err, &tickErr)
}
