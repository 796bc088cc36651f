package bottypes

// State is the state of the read-dispatch loop.
type State int

const (
	// StateRunning - the loop is waiting for, or processing, the next input line
	StateRunning State = iota
	// StateTerminated - close/exit was dispatched or the input ended
	StateTerminated
)

// String returns a human-readable representation of the loop state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
