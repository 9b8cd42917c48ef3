package marquee

// State is the engine's hover state.
type State int

const (
	Running State = iota
	Paused
	Stopped // terminal; reached only through Teardown
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// pointerEnter pauses a running marquee.
func (s State) pointerEnter() State {
	if s == Running {
		return Paused
	}
	return s
}

// pointerLeave resumes a paused marquee.
func (s State) pointerLeave() State {
	if s == Paused {
		return Running
	}
	return s
}
