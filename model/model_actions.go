package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDestination = errors.New("portal destination out of route")
var ErrBadPosition = errors.New("ant position out of route")

// NewRoute copies steps, the route never shares its sequence with the caller.
func NewRoute(steps []Step) *Route {
	s := make([]Step, len(steps))
	copy(s, steps)
	return &Route{Steps: s}
}

func (r *Route) Len() int {
	return len(r.Steps)
}

func (r *Route) At(n int) Step {
	r.mustContain(n)
	return r.Steps[n]
}

// ClosePortal turns an open portal at n into a closed one to the same
// destination. Any other step is left as is.
func (r *Route) ClosePortal(n int) {
	r.mustContain(n)
	if r.Steps[n].IsOpen() {
		r.Steps[n].State = PORTAL_CLOSED
	}
}

// OpenPortals counts portals that can still fire.
func (r *Route) OpenPortals() int {
	open := 0
	for _, s := range r.Steps {
		if s.IsOpen() {
			open++
		}
	}
	return open
}

func (r *Route) Validate() error {
	for i, s := range r.Steps {
		if s.Kind == STEP_PORTAL && (s.Destination < 0 || s.Destination >= len(r.Steps)) {
			return fmt.Errorf("step %d -> %d, route length %d: %w", i, s.Destination, len(r.Steps), ErrInvalidDestination)
		}
	}
	return nil
}

func (r *Route) String() string {
	names := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (r *Route) mustContain(n int) {
	if n < 0 || n >= len(r.Steps) {
		panic(fmt.Sprintf("step index %d out of route of length %d", n, len(r.Steps)))
	}
}

func NewWorld(steps []Step) *World {
	return NewWorldAt(steps, Start())
}

// NewWorldAt places the ant anywhere on the route. Invalid destinations or
// positions panic.
func NewWorldAt(steps []Step, ant AntPosition) *World {
	route := NewRoute(steps)
	if err := route.Validate(); err != nil {
		panic(err)
	}
	if err := CheckPosition(route, ant); err != nil {
		panic(err)
	}
	return &World{Route: route, Ant: ant}
}

// CheckPosition accepts Start, Finish and Step(n) with 0 <= n <= length.
func CheckPosition(r *Route, ant AntPosition) error {
	switch ant.Kind {
	case POS_START, POS_FINISH:
		return nil
	case POS_STEP:
		if ant.N < 0 || ant.N > r.Len() {
			return fmt.Errorf("%v on route of length %d: %w", ant, r.Len(), ErrBadPosition)
		}
		return nil
	default:
		return fmt.Errorf("position kind %d: %w", ant.Kind, ErrBadPosition)
	}
}

func (w *World) Finished() bool {
	return w.Ant.Kind == POS_FINISH
}

// Advance performs exactly one transition. A teleport never chains into
// the portal found at its destination.
func (w *World) Advance() Tick {
	tick := Tick{From: w.Ant}
	switch w.Ant.Kind {
	case POS_START:
		if w.Route.Len() == 0 {
			w.Ant = Finish()
		} else {
			w.Ant = At(1)
		}
	case POS_STEP:
		n := w.Ant.N
		if n == w.Route.Len() {
			w.Ant = Finish()
			break
		}
		step := w.Route.At(n)
		if step.IsOpen() {
			w.Route.ClosePortal(n)
			w.Ant = At(step.Destination)
			tick.Teleported = true
		} else {
			w.Ant = At(n + 1)
		}
	case POS_FINISH:
	default:
		panic(w.Ant.Kind)
	}
	tick.To = w.Ant
	return tick
}

// Walk advances until Finish. Every open portal fires at most once, so the
// walk is bounded by (length+1) * (open portals+1) ticks.
func (w *World) Walk(visit func(Tick)) {
	for !w.Finished() {
		visit(w.Advance())
	}
}
