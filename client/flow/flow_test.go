package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameMode(t *testing.T) {
	tests := []struct {
		mode      GameMode
		name      string
		inSession bool
	}{
		{GameModeMenu, "Menu", false},
		{GameModeStarting, "Starting", true},
		{GameModePlay, "Play", true},
		{GameModeNetworkError, "Network Error", false},
		{GameMode(42), "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mode.String())
			assert.Equal(t, tt.inSession, tt.mode.InSession())
		})
	}
}
