package flow

// GameMode is the screen the client is on. It is independent of the session
// run phase: a session can be Won while the mode is still Play.
type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeStarting
	GameModePlay
	GameModeNetworkError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeStarting:
		return "Starting"
	case GameModePlay:
		return "Play"
	case GameModeNetworkError:
		return "Network Error"
	}
	return "Unknown"
}

// InSession reports whether the mode owns a session that must be torn down
// when leaving it.
func (m GameMode) InSession() bool {
	return m == GameModeStarting || m == GameModePlay
}
