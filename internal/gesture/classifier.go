package gesture

import (
	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"
)

// Locator finds the point under a canvas position.
type Locator interface {
	PointAt(pos geometry.Point2D) (points.ID, bool)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(pos geometry.Point2D) (points.ID, bool)

// PointAt calls f(pos).
func (f LocatorFunc) PointAt(pos geometry.Point2D) (points.ID, bool) {
	return f(pos)
}

// Classifier is the sole owner of the gesture state.
type Classifier struct {
	machine Machine
	locator Locator
	state   State
}

// NewClassifier creates a classifier in the Idle state.
func NewClassifier(dragThreshold float64, locator Locator) *Classifier {
	return &Classifier{
		machine: Machine{DragThreshold: dragThreshold},
		locator: locator,
	}
}

// State returns the current gesture state.
func (c *Classifier) State() State {
	return c.state
}

// Down handles a pointer press at pos.
func (c *Classifier) Down(pos geometry.Point2D) []Effect {
	ev := Event{Kind: PointerDown, Pos: pos}
	if c.locator != nil {
		ev.Hit, ev.HasHit = c.locator.PointAt(pos)
	}
	return c.apply(ev)
}

// Move handles pointer motion to pos.
func (c *Classifier) Move(pos geometry.Point2D) []Effect {
	return c.apply(Event{Kind: PointerMove, Pos: pos})
}

// Up handles a pointer release at pos.
func (c *Classifier) Up(pos geometry.Point2D) []Effect {
	return c.apply(Event{Kind: PointerUp, Pos: pos})
}

// Leave handles the pointer leaving the canvas.
func (c *Classifier) Leave() []Effect {
	return c.apply(Event{Kind: PointerLeave})
}

func (c *Classifier) apply(ev Event) []Effect {
	var effects []Effect
	c.state, effects = c.machine.Transition(c.state, ev)
	return effects
}
