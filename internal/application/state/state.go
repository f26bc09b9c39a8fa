package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	// StateFailed means the controller stopped on a fatal error
	StateFailed
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether the simulation advances in this state
func (s GameState) AcceptsInput() bool {
	return s == StatePlaying
}
