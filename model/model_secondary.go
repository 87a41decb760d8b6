package model

import "fmt"

func Empty() Step {
	return Step{Kind: STEP_EMPTY}
}

func Portal(state PortalState, destination int) Step {
	return Step{Kind: STEP_PORTAL, State: state, Destination: destination}
}

func OpenPortal(destination int) Step {
	return Portal(PORTAL_OPEN, destination)
}

func ClosedPortal(destination int) Step {
	return Portal(PORTAL_CLOSED, destination)
}

func Start() AntPosition {
	return AntPosition{Kind: POS_START}
}

func At(n int) AntPosition {
	return AntPosition{Kind: POS_STEP, N: n}
}

func Finish() AntPosition {
	return AntPosition{Kind: POS_FINISH}
}

// IsOpen reports whether the step is a portal that can still fire.
func (s Step) IsOpen() bool {
	return s.Kind == STEP_PORTAL && s.State == PORTAL_OPEN
}

func (ps PortalState) Name() string {
	switch ps {
	case PORTAL_OPEN:
		return "Open"
	case PORTAL_CLOSED:
		return "Closed"
	default:
		return fmt.Sprintf("n/a:%d", ps)
	}
}

func (s Step) String() string {
	switch s.Kind {
	case STEP_EMPTY:
		return "Empty"
	case STEP_PORTAL:
		return fmt.Sprintf("Portal(%s, %d)", s.State.Name(), s.Destination)
	default:
		panic(s.Kind)
	}
}

func (p AntPosition) String() string {
	switch p.Kind {
	case POS_START:
		return "Start"
	case POS_STEP:
		return fmt.Sprintf("Step(%d)", p.N)
	case POS_FINISH:
		return "Finish"
	default:
		panic(p.Kind)
	}
}

func (t Tick) String() string {
	if t.Teleported {
		return fmt.Sprintf("%v ~> %v", t.From, t.To)
	}
	return fmt.Sprintf("%v -> %v", t.From, t.To)
}
