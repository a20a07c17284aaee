package types

import (
	"bytes"
	"encoding/json"
)

// SessionID is an opaque session token issued by the authority.
// It holds the raw JSON encoding of the token and is echoed back verbatim.
type SessionID string

func (id SessionID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

func (id *SessionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	*id = SessionID(b)
	return nil
}

// String returns a printable form of the token, only for logs and display.
func (id SessionID) String() string {
	var s string
	if err := json.Unmarshal([]byte(id), &s); err == nil {
		return s
	}
	return string(id)
}

// ControlState is the pressed state of one player's controls.
type ControlState struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Jump  bool `json:"jump"`
}

// InputFrame is the input sent with one tick. P2 is set iff the session has two players.
type InputFrame struct {
	P1 ControlState  `json:"p1"`
	P2 *ControlState `json:"p2,omitempty"`
}
