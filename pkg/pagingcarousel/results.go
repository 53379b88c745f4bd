package pagingcarousel

// ResultAction represents how the user left a running Container.
type ResultAction int

const (
	ResultActionSelected  ResultAction = iota // User confirmed the current page (A or Start)
	ResultActionCancelled                     // User backed out (B); Run reports ErrCancelled
)

func (a ResultAction) String() string {
	switch a {
	case ResultActionSelected:
		return "selected"
	case ResultActionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is returned by Container.Run.
type Result struct {
	Page   int          // Page showing when the carousel exited
	Action ResultAction // What ended the loop
}
