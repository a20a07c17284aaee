package session

// RunPhase is the coarse lifecycle state of a session.
type RunPhase int

const (
	RunPhaseIdle RunPhase = iota
	RunPhaseStarting
	RunPhaseRunning
	RunPhaseWon
	RunPhaseTerminated
)

func (p RunPhase) String() string {
	switch p {
	case RunPhaseIdle:
		return "Idle"
	case RunPhaseStarting:
		return "Starting"
	case RunPhaseRunning:
		return "Running"
	case RunPhaseWon:
		return "Won"
	case RunPhaseTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// Active reports whether a session exists or is being created in this phase.
func (p RunPhase) Active() bool {
	return p == RunPhaseStarting || p == RunPhaseRunning || p == RunPhaseWon
}

// Transition is a phase change seen by a PhaseTracker.
type Transition struct {
	From RunPhase
	To   RunPhase
}

// PhaseTracker turns polled phases into transitions. The zero value starts in Idle.
type PhaseTracker struct {
	last RunPhase
}

// Observe records p and reports the transition if it differs from the last phase.
func (t *PhaseTracker) Observe(p RunPhase) (Transition, bool) {
	if p == t.last {
		return Transition{}, false
	}
	tr := Transition{From: t.last, To: p}
	t.last = p
	return tr, true
}
