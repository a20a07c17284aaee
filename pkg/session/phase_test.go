package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTracker_Observe(t *testing.T) {
	var tracker PhaseTracker
	polls := []RunPhase{
		RunPhaseIdle,
		RunPhaseStarting,
		RunPhaseStarting,
		RunPhaseRunning,
		RunPhaseWon,
		RunPhaseWon,
		RunPhaseTerminated,
	}
	var got []Transition
	for _, p := range polls {
		if tr, ok := tracker.Observe(p); ok {
			got = append(got, tr)
		}
	}
	assert.Equal(t, []Transition{
		{From: RunPhaseIdle, To: RunPhaseStarting},
		{From: RunPhaseStarting, To: RunPhaseRunning},
		{From: RunPhaseRunning, To: RunPhaseWon},
		{From: RunPhaseWon, To: RunPhaseTerminated},
	}, got)
}

func TestRunPhase_Active(t *testing.T) {
	assert.False(t, RunPhaseIdle.Active())
	assert.True(t, RunPhaseStarting.Active())
	assert.True(t, RunPhaseRunning.Active())
	assert.True(t, RunPhaseWon.Active())
	assert.False(t, RunPhaseTerminated.Active())
}
