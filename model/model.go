package model

type StepKind int

const (
	STEP_EMPTY StepKind = iota
	STEP_PORTAL
)

type PortalState int

const (
	PORTAL_OPEN PortalState = iota
	PORTAL_CLOSED
)

// Step is one position of the route. State and Destination are
// meaningful only for STEP_PORTAL.
type Step struct {
	Kind        StepKind
	State       PortalState
	Destination int
}

type Route struct {
	Steps []Step
}

type PositionKind int

const (
	POS_START PositionKind = iota
	POS_STEP
	POS_FINISH
)

// AntPosition is Start, Step(N) or Finish. N is used only for POS_STEP.
type AntPosition struct {
	Kind PositionKind
	N    int
}

type World struct {
	Route *Route
	Ant   AntPosition
}

// Tick describes one Advance call.
type Tick struct {
	From, To   AntPosition
	Teleported bool
}
