// Package filter holds the per-category visibility toggles and the active
// phrase preset. Both only shape what is drawn and what a new point is
// pre-filled with; neither affects hit-testing or editing.
package filter

import "axescanvas/internal/points"

// State holds one visibility flag per category.
type State struct {
	ShowPersonal         bool
	ShowResearchProject  bool
	ShowProjectKeyPhrase bool
}

// Default returns a state with every category visible.
func Default() State {
	return State{
		ShowPersonal:         true,
		ShowResearchProject:  true,
		ShowProjectKeyPhrase: true,
	}
}

// Visible reports whether points of category c should be drawn.
// Unknown categories follow the default category's flag.
func (s State) Visible(c points.Category) bool {
	switch c.Normalize() {
	case points.ResearchProject:
		return s.ShowResearchProject
	case points.ProjectKeyPhrase:
		return s.ShowProjectKeyPhrase
	default:
		return s.ShowPersonal
	}
}

// Set sets the flag for category c.
func (s *State) Set(c points.Category, visible bool) {
	switch c.Normalize() {
	case points.ResearchProject:
		s.ShowResearchProject = visible
	case points.ProjectKeyPhrase:
		s.ShowProjectKeyPhrase = visible
	default:
		s.ShowPersonal = visible
	}
}

// Toggle flips the flag for category c and returns the new value.
func (s *State) Toggle(c points.Category) bool {
	v := !s.Visible(c)
	s.Set(c, v)
	return v
}

// PhraseSelection is a single optional choice among the preset phrases.
type PhraseSelection struct {
	active string
	set    bool
}

// Toggle selects phrase, or clears the selection if phrase is already active.
func (p *PhraseSelection) Toggle(phrase string) {
	if p.set && p.active == phrase {
		p.Clear()
		return
	}
	p.active = phrase
	p.set = true
}

// Clear removes any selection.
func (p *PhraseSelection) Clear() {
	p.active = ""
	p.set = false
}

// Active returns the selected phrase, if any.
func (p PhraseSelection) Active() (string, bool) {
	return p.active, p.set
}
