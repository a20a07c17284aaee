package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_echoedVerbatim(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantString  string
		wantEncoded string
	}{
		{
			name:        "string token",
			payload:     `{"session_id":"AB12CD34"}`,
			wantString:  "AB12CD34",
			wantEncoded: `"AB12CD34"`,
		},
		{
			name:        "numeric token",
			payload:     `{"session_id": 42}`,
			wantString:  "42",
			wantEncoded: `42`,
		},
		{
			name:        "structured token",
			payload:     `{"session_id":{"shard":3,"id":"x"}}`,
			wantString:  `{"shard":3,"id":"x"}`,
			wantEncoded: `{"shard":3,"id":"x"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				SessionID SessionID `json:"session_id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &body))
			assert.Equal(t, tt.wantString, body.SessionID.String())

			b, err := json.Marshal(body.SessionID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEncoded, string(b))
		})
	}
}

func TestSessionID_null(t *testing.T) {
	var id SessionID = `"x"`
	require.NoError(t, json.Unmarshal([]byte("null"), &id))
	assert.Equal(t, SessionID(""), id)
}

func TestInputFrame_playerTwoPresence(t *testing.T) {
	solo, err := json.Marshal(InputFrame{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p1":{"left":false,"right":false,"jump":false}}`, string(solo))

	duo, err := json.Marshal(InputFrame{P2: &ControlState{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p1":{"left":false,"right":false,"jump":false},"p2":{"left":false,"right":false,"jump":false}}`, string(duo))
}

func TestWorldState_decode(t *testing.T) {
	payload := `{
		"players": {"p1": {"x": 80, "y": 320, "vx": 0, "vy": 0.6, "color": "#e74c3c", "on_ground": false}},
		"level": {
			"tiles": [{"x": 0, "y": 400, "w": 250, "h": 20}],
			"doors": [{"x": 330, "y": 310, "w": 20, "h": 100}],
			"pressure_plates": [{"x": 460, "y": 392, "w": 60, "h": 8, "active": true}],
			"goal": {"x": 700, "y": 360, "w": 60, "h": 40},
			"doors_open": true
		},
		"win": false
	}`
	ws := &WorldState{}
	require.NoError(t, json.Unmarshal([]byte(payload), ws))

	require.Contains(t, ws.Players, PlayerOne)
	assert.Equal(t, "#e74c3c", ws.Players[PlayerOne].Color)
	assert.Len(t, ws.Level.Tiles, 1)
	assert.True(t, ws.Level.PressurePlates[0].Active)
	assert.Equal(t, 460.0, ws.Level.PressurePlates[0].X)
	assert.True(t, ws.Level.DoorsOpen)
	assert.Nil(t, ws.Level.GoalDoor)
	assert.False(t, ws.Win)
}
