package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/authority"
	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unreachable",
			err:  errors.New("dial tcp: connection refused"),
			want: "Could not reach the game server. Press Enter to return to the menu.",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("failed to send request: %w", context.DeadlineExceeded),
			want: "The game server is not responding. Press Enter to return to the menu.",
		},
		{
			name: "session gone",
			err:  &authority.StatusError{StatusCode: 404, Body: `{"error": "Session not found"}`},
			want: "The game session has expired. Press Enter to return to the menu.",
		},
		{
			name: "bad reply",
			err:  fmt.Errorf("%w: no session_id", authority.ErrMalformedResponse),
			want: "The game server sent an unexpected reply. Press Enter to return to the menu.",
		},
		{
			name: "already actionable",
			err:  fmt.Errorf("wrapped: %w", &ActionableError{Message: "custom"}),
			want: "custom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(tt.err)
			assert.Equal(t, tt.want, got.Message)
			assert.True(t, errors.Is(got, tt.err) || errors.As(tt.err, new(*ActionableError)))
		})
	}
}
