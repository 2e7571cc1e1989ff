// Package points holds the annotation points placed on the canvas.
package points

import (
	"errors"
	"fmt"
	"strings"

	"axescanvas/pkg/geometry"
)

// Errors returned by store mutations.
var (
	// ErrNotFound indicates the id does not refer to a live point.
	ErrNotFound = errors.New("point not found")

	// ErrEmptyLabel indicates a blank label was supplied.
	ErrEmptyLabel = errors.New("label is required")
)

// ID identifies a point for its whole lifetime. IDs are never reused.
type ID uint64

// Point is a labeled annotation in canvas pixel coordinates.
type Point struct {
	ID       ID
	Pos      geometry.Point2D
	Label    string
	Category Category
}

// Store is an ordered collection of points. Insertion order is draw order:
// the last point added renders on top. Store does no locking; its owner
// serializes access.
type Store struct {
	points []Point
	lastID ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a new point with a fresh id.
func (s *Store) Add(pos geometry.Point2D, label string, category Category) (Point, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Point{}, ErrEmptyLabel
	}
	s.lastID++
	p := Point{
		ID:       s.lastID,
		Pos:      pos,
		Label:    label,
		Category: category.Normalize(),
	}
	s.points = append(s.points, p)
	return p, nil
}

// Move sets the position of a point.
func (s *Store) Move(id ID, pos geometry.Point2D) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("move %d: %w", id, ErrNotFound)
	}
	s.points[i].Pos = pos
	return nil
}

// Update overwrites a point's label and category in place. Id and position
// are left alone.
func (s *Store) Update(id ID, label string, category Category) (Point, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Point{}, ErrEmptyLabel
	}
	i := s.index(id)
	if i < 0 {
		return Point{}, fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	s.points[i].Label = label
	s.points[i].Category = category.Normalize()
	return s.points[i], nil
}

// Delete removes exactly the point with the given id.
func (s *Store) Delete(id ID) (Point, error) {
	i := s.index(id)
	if i < 0 {
		return Point{}, fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	p := s.points[i]
	s.points = append(s.points[:i], s.points[i+1:]...)
	return p, nil
}

// Get returns the point with the given id.
func (s *Store) Get(id ID) (Point, bool) {
	i := s.index(id)
	if i < 0 {
		return Point{}, false
	}
	return s.points[i], true
}

// All returns a copy of the points in insertion order.
func (s *Store) All() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points.
func (s *Store) Len() int {
	return len(s.points)
}

// Topmost returns the most recently added point within radius of pos.
func (s *Store) Topmost(pos geometry.Point2D, radius float64) (Point, bool) {
	return FindTopmostWithin(s.points, pos, radius)
}

func (s *Store) index(id ID) int {
	for i := range s.points {
		if s.points[i].ID == id {
			return i
		}
	}
	return -1
}
