// Package gesture classifies a pointer-down, pointer-move*, pointer-up
// sequence into a point drag, a click on a point, or a click on empty space.
//
// The classification is a finite-state machine. Transition is a pure
// function so every rule can be exercised without a pointer device;
// Classifier wraps it with hit-testing and the current state.
package gesture

import (
	"fmt"

	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"
)

// DefaultDragThreshold is how far, in canvas pixels along either axis, the
// pointer must travel from the down position before a press becomes a drag.
const DefaultDragThreshold = 2.0

// Phase is the classifier's state.
type Phase int

const (
	Idle Phase = iota
	ArmedOnPoint
	ArmedOnEmpty
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case ArmedOnPoint:
		return "ArmedOnPoint"
	case ArmedOnEmpty:
		return "ArmedOnEmpty"
	case Dragging:
		return "Dragging"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the transient gesture state. It returns to the zero value
// (Idle) after every pointer-up or pointer-leave.
type State struct {
	Phase              Phase
	Target             points.ID // valid in ArmedOnPoint and Dragging
	Origin             geometry.Point2D
	MovedPastThreshold bool
}

func (s State) String() string {
	switch s.Phase {
	case ArmedOnPoint, Dragging:
		return fmt.Sprintf("%s(%d)", s.Phase, s.Target)
	}
	return s.Phase.String()
}

// EventKind is the kind of raw pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pointer event in canvas space. For PointerDown, Hit carries
// the result of hit-testing at Pos.
type Event struct {
	Kind   EventKind
	Pos    geometry.Point2D
	Hit    points.ID
	HasHit bool
}

// EffectKind is the kind of side effect a transition requests.
type EffectKind int

const (
	// MovePoint writes Pos to Point immediately (live drag feedback).
	MovePoint EffectKind = iota
	// OpenEdit opens the editor in edit mode for Point.
	OpenEdit
	// OpenAdd opens the editor in add mode at Pos.
	OpenAdd
)

func (k EffectKind) String() string {
	switch k {
	case MovePoint:
		return "MovePoint"
	case OpenEdit:
		return "OpenEdit"
	case OpenAdd:
		return "OpenAdd"
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Effect is a side effect requested by a transition. The machine itself
// never touches the store or the editor.
type Effect struct {
	Kind  EffectKind
	Point points.ID
	Pos   geometry.Point2D
}

// Machine holds the transition rules.
type Machine struct {
	DragThreshold float64
}

// exceeds reports whether pos is further than the drag threshold from origin.
func (m Machine) exceeds(origin, pos geometry.Point2D) bool {
	return origin.ChebyshevDistance(pos) > m.DragThreshold
}

// Transition computes the next state and the effects of handling ev in s.
func (m Machine) Transition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case PointerDown:
		// A down while armed means the previous up was lost; start over.
		if ev.HasHit {
			return State{Phase: ArmedOnPoint, Target: ev.Hit, Origin: ev.Pos}, nil
		}
		return State{Phase: ArmedOnEmpty, Origin: ev.Pos}, nil

	case PointerMove:
		return m.move(s, ev.Pos)

	case PointerUp:
		return State{}, m.up(s, ev.Pos)

	case PointerLeave:
		return State{}, nil
	}
	return s, nil
}

func (m Machine) move(s State, pos geometry.Point2D) (State, []Effect) {
	switch s.Phase {
	case ArmedOnPoint:
		if !m.exceeds(s.Origin, pos) {
			return s, nil
		}
		s.Phase = Dragging
		s.MovedPastThreshold = true
		return s, []Effect{{Kind: MovePoint, Point: s.Target, Pos: pos}}

	case Dragging:
		return s, []Effect{{Kind: MovePoint, Point: s.Target, Pos: pos}}

	case ArmedOnEmpty:
		// Empty-space drags have no effect, but the gesture is no longer a click.
		if !s.MovedPastThreshold && m.exceeds(s.Origin, pos) {
			s.MovedPastThreshold = true
		}
		return s, nil
	}
	return s, nil
}

func (m Machine) up(s State, pos geometry.Point2D) []Effect {
	click := !s.MovedPastThreshold && !m.exceeds(s.Origin, pos)
	switch s.Phase {
	case ArmedOnPoint:
		if click {
			return []Effect{{Kind: OpenEdit, Point: s.Target, Pos: s.Origin}}
		}
	case ArmedOnEmpty:
		if click {
			return []Effect{{Kind: OpenAdd, Pos: s.Origin}}
		}
	}
	// Dragging: the position was already written on the last move.
	return nil
}
