package model

// ServerMessage is one gob frame of the /play stream.
type ServerMessage struct {
	Tick       int
	Teleported bool
	Snapshot   Snapshot
}

type Snapshot struct {
	Steps []Step
	Ant   AntPosition
}

// Snapshot copies the world so later ticks do not change what was sent.
func (w *World) Snapshot() Snapshot {
	steps := make([]Step, len(w.Route.Steps))
	copy(steps, w.Route.Steps)
	return Snapshot{Steps: steps, Ant: w.Ant}
}

// World rebuilds a world from a received snapshot.
func (s Snapshot) World() *World {
	return NewWorldAt(s.Steps, s.Ant)
}
