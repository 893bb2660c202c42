package selection

// State represents the high-level phase of the crop selection, derived
// from how many corner handles have been placed.
type State int

const (
	StateIdle     State = iota // no handles placed yet
	StatePartial               // one handle placed, waiting for the second
	StateComplete              // both handles placed, rectangle defined
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePartial:
		return "partial"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StateListener is invoked on every change of the derived State.
type StateListener func(prev, next State)

// MaxHandles is the number of corners defining the crop rectangle.
const MaxHandles = 2
