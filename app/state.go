package app

// State represents the current application state.
type State int

const (
	StateLoading State = iota // Waiting for the dataset
	StateReady                // Table shown, scrolling enabled
	StateHelp                 // Key reference overlay
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateHelp:
		return "help"
	default:
		return "unknown"
	}
}
