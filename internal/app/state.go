// Package app provides the application state shared by the canvas, the
// side panel and the editor surfaces, and the events they observe.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"axescanvas/internal/config"
	"axescanvas/internal/editor"
	"axescanvas/internal/filter"
	"axescanvas/internal/gesture"
	"axescanvas/internal/points"
	"axescanvas/internal/render"
	"axescanvas/pkg/geometry"
)

// State is the single owner of the point store, the filters, the phrase
// selection, the gesture classifier and the editor session. Every mutation
// goes through a State method, which serializes it.
type State struct {
	mu sync.RWMutex

	cfg     config.Config
	scene   render.Scene // surface settings and palette, built once
	store   *points.Store
	filters filter.State
	phrase  filter.PhraseSelection
	gesture *gesture.Classifier
	editor  *editor.Session
	surface editor.Surface

	// Point under the cursor while no gesture is in progress.
	hover    points.ID
	hasHover bool

	// Last highlight reported to listeners.
	lit    points.ID
	hasLit bool

	verbose bool

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventPointsChanged fires after any store mutation, including each
	// live drag step.
	EventPointsChanged EventType = iota
	// EventFiltersChanged carries the new filter.State.
	EventFiltersChanged
	// EventPhraseChanged carries the active phrase, or "" for none.
	EventPhraseChanged
	// EventHighlightChanged fires when the hovered or dragged point changes.
	EventHighlightChanged
	// EventEditorOpened carries the editor.Request to present.
	EventEditorOpened
	// EventEditorClosed carries the editor.Outcome, or nil on cancel.
	EventEditorClosed
	// EventEditorRejected carries the commit error; the editor stays open.
	EventEditorRejected
	// EventStatus carries a short human-readable message.
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state from cfg.
func NewState(cfg config.Config) *State {
	s := &State{
		cfg:       cfg,
		scene:     render.NewScene(cfg),
		store:     points.NewStore(),
		filters:   filter.Default(),
		listeners: make(map[EventType][]EventListener),
	}
	s.editor = editor.NewSession(s.store)
	s.gesture = gesture.NewClassifier(cfg.DragThreshold, gesture.LocatorFunc(s.pointAt))
	return s
}

// Config returns the configuration the state was created with.
func (s *State) Config() config.Config {
	return s.cfg
}

// SetVerbose enables logging of every gesture transition.
func (s *State) SetVerbose(v bool) {
	s.mu.Lock()
	s.verbose = v
	s.mu.Unlock()
}

// SetSurface sets the editor presentation. It is called outside the state
// lock and may call back into the state, including blocking until the user
// has answered.
func (s *State) SetSurface(surface editor.Surface) {
	s.mu.Lock()
	s.surface = surface
	s.mu.Unlock()
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// batch collects the events raised while the lock is held so they can be
// emitted after it is released.
type batch struct {
	events  []pendingEvent
	present *editor.Request
}

type pendingEvent struct {
	event EventType
	data  interface{}
}

func (b *batch) emit(event EventType, data interface{}) {
	b.events = append(b.events, pendingEvent{event: event, data: data})
}

func (b *batch) status(format string, args ...interface{}) {
	b.emit(EventStatus, fmt.Sprintf(format, args...))
}

func (b *batch) open(req editor.Request) {
	b.present = &req
	b.emit(EventEditorOpened, req)
}

// update runs fn under the write lock, then emits what it collected and
// presents the editor if fn opened it.
func (s *State) update(fn func(b *batch)) {
	var b batch
	s.mu.Lock()
	fn(&b)
	surface := s.surface
	s.mu.Unlock()

	for _, p := range b.events {
		s.Emit(p.event, p.data)
	}
	if b.present != nil && surface != nil {
		surface.Present(*b.present)
	}
}

// pointAt is the classifier's hit test. Filters are not consulted: hidden
// points stay draggable and clickable.
func (s *State) pointAt(pos geometry.Point2D) (points.ID, bool) {
	p, ok := s.store.Topmost(pos, s.cfg.HitRadius)
	return p.ID, ok
}

// PointerDown handles a press at pos in canvas space.
func (s *State) PointerDown(pos geometry.Point2D) {
	s.update(func(b *batch) {
		if s.editor.IsOpen() {
			return
		}
		s.applyEffects(b, s.gesture.Down(pos))
		s.trace(gesture.PointerDown, pos)
		s.refreshHighlight(b)
	})
}

// PointerMove handles motion to pos in canvas space.
func (s *State) PointerMove(pos geometry.Point2D) {
	s.update(func(b *batch) {
		if s.editor.IsOpen() {
			return
		}
		before := s.gesture.State().Phase
		s.applyEffects(b, s.gesture.Move(pos))
		if after := s.gesture.State().Phase; after != before {
			s.trace(gesture.PointerMove, pos)
		}
		if s.gesture.State().Phase == gesture.Idle {
			p, ok := s.store.Topmost(pos, s.cfg.HitRadius)
			s.hover, s.hasHover = p.ID, ok
		}
		s.refreshHighlight(b)
	})
}

// PointerUp handles a release at pos in canvas space.
func (s *State) PointerUp(pos geometry.Point2D) {
	s.update(func(b *batch) {
		if s.editor.IsOpen() {
			return
		}
		s.applyEffects(b, s.gesture.Up(pos))
		s.trace(gesture.PointerUp, pos)
		s.refreshHighlight(b)
	})
}

// PointerLeave handles the pointer leaving the canvas. Any position written
// during a drag stays; nothing is opened.
func (s *State) PointerLeave() {
	s.update(func(b *batch) {
		if s.gesture.State().Phase != gesture.Idle {
			s.trace(gesture.PointerLeave, geometry.Point2D{})
		}
		s.applyEffects(b, s.gesture.Leave())
		s.hover, s.hasHover = 0, false
		s.refreshHighlight(b)
	})
}

func (s *State) applyEffects(b *batch, effects []gesture.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case gesture.MovePoint:
			if err := s.store.Move(e.Point, e.Pos); err != nil {
				log.Printf("Gesture: drag ignored: %v", err)
				continue
			}
			b.emit(EventPointsChanged, nil)

		case gesture.OpenEdit:
			p, ok := s.store.Get(e.Point)
			if !ok {
				log.Printf("Gesture: edit target %d no longer exists", e.Point)
				continue
			}
			b.open(s.editor.OpenEdit(p))

		case gesture.OpenAdd:
			label, category := "", points.DefaultCategory
			if phrase, ok := s.phrase.Active(); ok {
				label, category = phrase, points.ProjectKeyPhrase
			}
			b.open(s.editor.OpenAdd(e.Pos, label, category))
		}
	}
}

func (s *State) trace(kind gesture.EventKind, pos geometry.Point2D) {
	if s.verbose {
		log.Printf("Gesture: %s at (%.1f, %.1f) -> %s", kind, pos.X, pos.Y, s.gesture.State())
	}
}

// highlight returns the point to ring: the gesture target while armed or
// dragging, otherwise the hovered point.
func (s *State) highlight() (points.ID, bool) {
	gs := s.gesture.State()
	switch gs.Phase {
	case gesture.ArmedOnPoint, gesture.Dragging:
		return gs.Target, true
	}
	return s.hover, s.hasHover
}

func (s *State) refreshHighlight(b *batch) {
	id, ok := s.highlight()
	if id == s.lit && ok == s.hasLit {
		return
	}
	s.lit, s.hasLit = id, ok
	b.emit(EventHighlightChanged, nil)
}

// CommitEditor commits f through the open editor. An empty label returns
// editor.ErrEmptyLabel and leaves the editor open. A target that vanished
// while the editor was open is logged and treated as a no-op.
func (s *State) CommitEditor(f editor.Fields) error {
	var result error
	s.update(func(b *batch) {
		s.editor.SetLabel(f.Label)
		s.editor.SetCategory(f.Category)
		out, err := s.editor.Commit()
		switch {
		case errors.Is(err, editor.ErrEmptyLabel):
			log.Printf("Editor: rejected commit without a label")
			b.emit(EventEditorRejected, err)
			b.status("Label required")
			result = err
		case errors.Is(err, points.ErrNotFound):
			log.Printf("Editor: %v (ignored)", err)
			b.emit(EventEditorClosed, nil)
			b.emit(EventPointsChanged, nil)
		case err != nil:
			result = err
		default:
			s.finish(b, out)
		}
	})
	return result
}

// DeleteEditorTarget deletes the point being edited.
func (s *State) DeleteEditorTarget() error {
	var result error
	s.update(func(b *batch) {
		out, err := s.editor.Delete()
		switch {
		case errors.Is(err, points.ErrNotFound):
			log.Printf("Editor: %v (ignored)", err)
			b.emit(EventEditorClosed, nil)
			b.emit(EventPointsChanged, nil)
		case err != nil:
			result = err
		default:
			if s.hasHover && s.hover == out.Point.ID {
				s.hover, s.hasHover = 0, false
				s.refreshHighlight(b)
			}
			s.finish(b, out)
		}
	})
	return result
}

// CancelEditor closes the editor without touching the store.
func (s *State) CancelEditor() {
	s.update(func(b *batch) {
		if s.editor.Cancel() {
			b.emit(EventEditorClosed, nil)
		}
	})
}

func (s *State) finish(b *batch, out editor.Outcome) {
	log.Printf("Points: %s %d %q (%s) at (%.1f, %.1f)",
		out.Kind, out.Point.ID, out.Point.Label, out.Point.Category, out.Point.Pos.X, out.Point.Pos.Y)
	b.emit(EventEditorClosed, out)
	b.emit(EventPointsChanged, nil)
	switch out.Kind {
	case editor.Added:
		b.status("Added %q", out.Point.Label)
	case editor.Updated:
		b.status("Updated %q", out.Point.Label)
	case editor.Deleted:
		b.status("Deleted %q", out.Point.Label)
	}
}

// EditorRequest returns what the open editor is showing.
func (s *State) EditorRequest() (editor.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor.Request()
}

// ToggleFilter flips the visibility of category c and returns the new value.
func (s *State) ToggleFilter(c points.Category) bool {
	var visible bool
	s.update(func(b *batch) {
		visible = s.filters.Toggle(c)
		b.emit(EventFiltersChanged, s.filters)
	})
	return visible
}

// SetFilter sets the visibility of category c.
func (s *State) SetFilter(c points.Category, visible bool) {
	s.update(func(b *batch) {
		if s.filters.Visible(c) == visible {
			return
		}
		s.filters.Set(c, visible)
		b.emit(EventFiltersChanged, s.filters)
	})
}

// Filters returns the current filter state.
func (s *State) Filters() filter.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// TogglePhrase selects phrase, or clears it if it is already selected.
func (s *State) TogglePhrase(phrase string) {
	s.update(func(b *batch) {
		s.phrase.Toggle(phrase)
		active, _ := s.phrase.Active()
		b.emit(EventPhraseChanged, active)
	})
}

// ActivePhrase returns the selected phrase preset, if any.
func (s *State) ActivePhrase() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phrase.Active()
}

// Points returns a snapshot of the store in insertion order.
func (s *State) Points() []points.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.All()
}

// Gesture returns the classifier state.
func (s *State) Gesture() gesture.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gesture.State()
}

// Scene returns everything the renderer needs for the current frame.
func (s *State) Scene() render.Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc := s.scene
	sc.Points = s.store.All()
	sc.Filters = s.filters
	sc.Highlight, sc.HasHighlight = s.highlight()
	return sc
}
