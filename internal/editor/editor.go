// Package editor implements the add/edit form contract shared by every
// presentation (modal dialog, terminal prompts). A Session collects a label
// and a category and commits them to the point store, deletes the edited
// point, or is cancelled without touching the store.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"
)

// Errors returned by Session operations.
var (
	// ErrEmptyLabel indicates a commit with a blank label. The session stays open.
	ErrEmptyLabel = errors.New("please enter a label for this point")

	// ErrNotOpen indicates an operation on a closed session.
	ErrNotOpen = errors.New("editor is not open")

	// ErrNotEditing indicates a delete requested while adding.
	ErrNotEditing = errors.New("delete is only available when editing a point")
)

// Mode is the editor mode.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "add"
}

// Fields are the user-editable values.
type Fields struct {
	Label    string
	Category points.Category
}

// Request describes what a presentation should show.
type Request struct {
	Mode   Mode
	Target points.ID        // edit mode only
	Pos    geometry.Point2D // pending position in add mode, current position in edit mode
	Fields Fields
}

// Title returns the heading for the form.
func (r Request) Title() string {
	if r.Mode == ModeEdit {
		return "Edit Point"
	}
	return "Add Point"
}

// CanDelete reports whether the delete control should be offered.
func (r Request) CanDelete() bool {
	return r.Mode == ModeEdit
}

// Surface presents an open session to the user. Implementations call back
// into the session owner to commit, delete or cancel.
type Surface interface {
	Present(req Request)
}

// OutcomeKind says what a finished session did to the store.
type OutcomeKind int

const (
	Added OutcomeKind = iota
	Updated
	Deleted
)

func (k OutcomeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of a successful commit or delete.
type Outcome struct {
	Kind  OutcomeKind
	Point points.Point
}

// Session is the editor state machine. It is closed until OpenAdd or
// OpenEdit is called and closes again after commit, delete or cancel.
type Session struct {
	store *points.Store
	open  bool
	req   Request
}

// NewSession creates a closed session that commits into store.
func NewSession(store *points.Store) *Session {
	return &Session{store: store}
}

// OpenAdd opens the editor for a new point at pos. Any previous state is
// discarded.
func (s *Session) OpenAdd(pos geometry.Point2D, label string, category points.Category) Request {
	s.req = Request{
		Mode:   ModeAdd,
		Pos:    pos,
		Fields: Fields{Label: label, Category: category.Normalize()},
	}
	s.open = true
	return s.req
}

// OpenEdit opens the editor on an existing point, populated from its
// current label and category.
func (s *Session) OpenEdit(p points.Point) Request {
	s.req = Request{
		Mode:   ModeEdit,
		Target: p.ID,
		Pos:    p.Pos,
		Fields: Fields{Label: p.Label, Category: p.Category.Normalize()},
	}
	s.open = true
	return s.req
}

// IsOpen reports whether the session is open.
func (s *Session) IsOpen() bool {
	return s.open
}

// Request returns the current request and whether the session is open.
func (s *Session) Request() (Request, bool) {
	return s.req, s.open
}

// SetLabel updates the pending label.
func (s *Session) SetLabel(label string) {
	if s.open {
		s.req.Fields.Label = label
	}
}

// SetCategory updates the pending category.
func (s *Session) SetCategory(c points.Category) {
	if s.open {
		s.req.Fields.Category = c.Normalize()
	}
}

// Commit applies the pending fields. An empty label is rejected and the
// session stays open. An edit whose target no longer exists closes the
// session and returns an error wrapping points.ErrNotFound.
func (s *Session) Commit() (Outcome, error) {
	if !s.open {
		return Outcome{}, ErrNotOpen
	}
	label := strings.TrimSpace(s.req.Fields.Label)
	if label == "" {
		return Outcome{}, ErrEmptyLabel
	}

	req := s.req
	switch req.Mode {
	case ModeEdit:
		s.close()
		p, err := s.store.Update(req.Target, label, req.Fields.Category)
		if err != nil {
			return Outcome{}, fmt.Errorf("commit edit: %w", err)
		}
		return Outcome{Kind: Updated, Point: p}, nil
	default:
		p, err := s.store.Add(req.Pos, label, req.Fields.Category)
		if err != nil {
			return Outcome{}, fmt.Errorf("commit add: %w", err)
		}
		s.close()
		return Outcome{Kind: Added, Point: p}, nil
	}
}

// Delete removes the edited point. A stale target closes the session and
// returns an error wrapping points.ErrNotFound.
func (s *Session) Delete() (Outcome, error) {
	if !s.open {
		return Outcome{}, ErrNotOpen
	}
	if s.req.Mode != ModeEdit {
		return Outcome{}, ErrNotEditing
	}
	target := s.req.Target
	s.close()
	p, err := s.store.Delete(target)
	if err != nil {
		return Outcome{}, fmt.Errorf("delete: %w", err)
	}
	return Outcome{Kind: Deleted, Point: p}, nil
}

// Cancel closes the session without touching the store. It reports whether
// the session was open.
func (s *Session) Cancel() bool {
	wasOpen := s.open
	s.close()
	return wasOpen
}

func (s *Session) close() {
	s.open = false
	s.req = Request{}
}
