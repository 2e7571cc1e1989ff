package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axescanvas/internal/config"
	"axescanvas/internal/editor"
	"axescanvas/internal/gesture"
	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"
)

type recordingSurface struct {
	requests []editor.Request
	answer   func(req editor.Request)
}

func (r *recordingSurface) Present(req editor.Request) {
	r.requests = append(r.requests, req)
	if r.answer != nil {
		r.answer(req)
	}
}

func at(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func newTestState(t *testing.T) (*State, *recordingSurface) {
	t.Helper()
	s := NewState(config.Default())
	surf := &recordingSurface{}
	s.SetSurface(surf)
	return s, surf
}

func click(s *State, p geometry.Point2D) {
	s.PointerDown(p)
	s.PointerUp(p)
}

// addPoint clicks empty space and commits the editor.
func addPoint(t *testing.T, s *State, p geometry.Point2D, label string, c points.Category) points.Point {
	t.Helper()
	click(s, p)
	require.NoError(t, s.CommitEditor(editor.Fields{Label: label, Category: c}))
	all := s.Points()
	require.NotEmpty(t, all)
	return all[len(all)-1]
}

func TestState_ClickEmptyOpensAddOnce(t *testing.T) {
	s, surf := newTestState(t)
	click(s, at(100, 100))

	require.Len(t, surf.requests, 1)
	req := surf.requests[0]
	assert.Equal(t, editor.ModeAdd, req.Mode)
	assert.Equal(t, at(100, 100), req.Pos)
	assert.Equal(t, editor.Fields{Category: points.Personal}, req.Fields)
	assert.Equal(t, gesture.Idle, s.Gesture().Phase)
}

func TestState_AddEditRoundTrip(t *testing.T) {
	s, surf := newTestState(t)
	p := addPoint(t, s, at(100, 100), "L1", points.Personal)

	all := s.Points()
	require.Len(t, all, 1)
	assert.Equal(t, "L1", p.Label)
	assert.Equal(t, points.Personal, p.Category)
	assert.Equal(t, at(100, 100), p.Pos)

	click(s, at(100, 100))
	require.Len(t, surf.requests, 2)
	req := surf.requests[1]
	assert.Equal(t, editor.ModeEdit, req.Mode)
	assert.Equal(t, p.ID, req.Target)
	assert.Equal(t, editor.Fields{Label: "L1", Category: points.Personal}, req.Fields)

	require.NoError(t, s.CommitEditor(editor.Fields{Label: "L2", Category: points.ResearchProject}))
	all = s.Points()
	require.Len(t, all, 1)
	assert.Equal(t, p.ID, all[0].ID)
	assert.Equal(t, p.Pos, all[0].Pos)
	assert.Equal(t, "L2", all[0].Label)
	assert.Equal(t, points.ResearchProject, all[0].Category)
}

func TestState_ClickOnPointEditsThatPointOnly(t *testing.T) {
	s, surf := newTestState(t)
	a := addPoint(t, s, at(100, 100), "a", points.Personal)
	b := addPoint(t, s, at(300, 300), "b", points.Personal)
	surf.requests = nil

	click(s, at(302, 298))
	require.Len(t, surf.requests, 1)
	assert.Equal(t, b.ID, surf.requests[0].Target)
	s.CancelEditor()

	click(s, at(99, 101))
	require.Len(t, surf.requests, 2)
	assert.Equal(t, a.ID, surf.requests[1].Target)
}

func TestState_DragMovesPointAndOpensNothing(t *testing.T) {
	s, surf := newTestState(t)
	p := addPoint(t, s, at(100, 100), "drag me", points.Personal)
	surf.requests = nil

	var changes int
	s.On(EventPointsChanged, func(interface{}) { changes++ })

	s.PointerDown(at(100, 100))
	s.PointerMove(at(101, 100))
	assert.Equal(t, at(100, 100), s.Points()[0].Pos)
	s.PointerMove(at(150, 120))
	assert.Equal(t, at(150, 120), s.Points()[0].Pos)
	assert.Equal(t, gesture.Dragging, s.Gesture().Phase)
	s.PointerMove(at(200, 220))
	s.PointerUp(at(205, 225))

	assert.Empty(t, surf.requests)
	got := s.Points()[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, at(200, 220), got.Pos)
	assert.Equal(t, 2, changes)
}

func TestState_LeaveMidDragKeepsLastPosition(t *testing.T) {
	s, surf := newTestState(t)
	addPoint(t, s, at(100, 100), "p", points.Personal)
	surf.requests = nil

	s.PointerDown(at(100, 100))
	s.PointerMove(at(140, 100))
	s.PointerLeave()
	s.PointerUp(at(140, 100))

	assert.Empty(t, surf.requests)
	assert.Equal(t, at(140, 100), s.Points()[0].Pos)
	assert.Equal(t, gesture.Idle, s.Gesture().Phase)
}

func TestState_DragOnEmptyDoesNothing(t *testing.T) {
	s, surf := newTestState(t)
	s.PointerDown(at(10, 10))
	s.PointerMove(at(200, 200))
	s.PointerUp(at(200, 200))
	assert.Empty(t, surf.requests)
	assert.Empty(t, s.Points())
}

func TestState_EmptyLabelKeepsEditorOpen(t *testing.T) {
	s, _ := newTestState(t)
	var rejected int
	s.On(EventEditorRejected, func(interface{}) { rejected++ })

	click(s, at(50, 50))
	err := s.CommitEditor(editor.Fields{Label: "   ", Category: points.Personal})
	assert.ErrorIs(t, err, editor.ErrEmptyLabel)
	assert.Empty(t, s.Points())
	_, open := s.EditorRequest()
	assert.True(t, open)
	assert.Equal(t, 1, rejected)

	require.NoError(t, s.CommitEditor(editor.Fields{Label: "ok", Category: points.Personal}))
	_, open = s.EditorRequest()
	assert.False(t, open)
}

func TestState_EmptyLabelOnEditLeavesPoint(t *testing.T) {
	s, _ := newTestState(t)
	p := addPoint(t, s, at(50, 50), "keep", points.ResearchProject)
	click(s, at(50, 50))
	assert.ErrorIs(t, s.CommitEditor(editor.Fields{Label: "", Category: points.Personal}), editor.ErrEmptyLabel)
	assert.Equal(t, []points.Point{p}, s.Points())
}

func TestState_DeleteRemovesExactlyTarget(t *testing.T) {
	s, _ := newTestState(t)
	a := addPoint(t, s, at(200, 200), "twin", points.Personal)
	b := addPoint(t, s, at(250, 250), "twin", points.Personal)

	// Drag b exactly on top of a.
	s.PointerDown(at(250, 250))
	s.PointerMove(at(200, 200))
	s.PointerUp(at(200, 200))
	require.Equal(t, at(200, 200), s.Points()[1].Pos)

	// The topmost (b) is under the cursor.
	click(s, at(200, 200))
	req, open := s.EditorRequest()
	require.True(t, open)
	assert.Equal(t, b.ID, req.Target)

	require.NoError(t, s.DeleteEditorTarget())
	assert.Equal(t, []points.Point{a}, s.Points())
}

func TestState_DeleteNotAllowedWhileAdding(t *testing.T) {
	s, _ := newTestState(t)
	click(s, at(10, 10))
	assert.ErrorIs(t, s.DeleteEditorTarget(), editor.ErrNotEditing)
}

func TestState_CancelDiscards(t *testing.T) {
	s, _ := newTestState(t)
	var closed []interface{}
	s.On(EventEditorClosed, func(data interface{}) { closed = append(closed, data) })

	click(s, at(10, 10))
	s.CancelEditor()
	s.CancelEditor()
	assert.Empty(t, s.Points())
	assert.Equal(t, []interface{}{nil}, closed)
}

func TestState_PointerIgnoredWhileEditorOpen(t *testing.T) {
	s, surf := newTestState(t)
	click(s, at(10, 10))
	click(s, at(400, 400))
	assert.Len(t, surf.requests, 1)
	assert.Equal(t, gesture.Idle, s.Gesture().Phase)
}

func TestState_FilterAffectsRenderOnly(t *testing.T) {
	s, surf := newTestState(t)
	mine := addPoint(t, s, at(100, 100), "mine", points.Personal)
	addPoint(t, s, at(300, 300), "theirs", points.ResearchProject)
	surf.requests = nil

	var filterEvents int
	s.On(EventFiltersChanged, func(interface{}) { filterEvents++ })
	assert.False(t, s.ToggleFilter(points.Personal))
	assert.Equal(t, 1, filterEvents)

	assert.Len(t, s.Points(), 2)
	sc := s.Scene()
	assert.False(t, sc.Filters.ShowPersonal)

	// Still clickable and draggable while hidden.
	click(s, at(100, 100))
	require.Len(t, surf.requests, 1)
	assert.Equal(t, mine.ID, surf.requests[0].Target)
	s.CancelEditor()

	s.PointerDown(at(100, 100))
	s.PointerMove(at(120, 130))
	s.PointerUp(at(120, 130))
	assert.Equal(t, at(120, 130), s.Points()[0].Pos)
}

func TestState_SetFilterOnlyEmitsOnChange(t *testing.T) {
	s, _ := newTestState(t)
	var n int
	s.On(EventFiltersChanged, func(interface{}) { n++ })
	s.SetFilter(points.ResearchProject, true)
	assert.Zero(t, n)
	s.SetFilter(points.ResearchProject, false)
	assert.Equal(t, 1, n)
	assert.False(t, s.Filters().ShowResearchProject)
}

func TestState_PhrasePrefillsAdd(t *testing.T) {
	s, surf := newTestState(t)
	s.TogglePhrase("posthuman")
	click(s, at(70, 70))

	require.Len(t, surf.requests, 1)
	assert.Equal(t, editor.Fields{Label: "posthuman", Category: points.ProjectKeyPhrase}, surf.requests[0].Fields)

	require.NoError(t, s.CommitEditor(surf.requests[0].Fields))
	p := s.Points()[0]
	assert.Equal(t, "posthuman", p.Label)
	assert.Equal(t, points.ProjectKeyPhrase, p.Category)
}

func TestState_PhraseToggledTwiceGivesBlankAdd(t *testing.T) {
	s, surf := newTestState(t)
	var phrases []interface{}
	s.On(EventPhraseChanged, func(data interface{}) { phrases = append(phrases, data) })

	s.TogglePhrase("writing")
	s.TogglePhrase("writing")
	_, ok := s.ActivePhrase()
	assert.False(t, ok)
	assert.Equal(t, []interface{}{"writing", ""}, phrases)

	click(s, at(70, 70))
	require.Len(t, surf.requests, 1)
	assert.Equal(t, editor.Fields{Category: points.Personal}, surf.requests[0].Fields)
}

func TestState_HoverHighlight(t *testing.T) {
	s, _ := newTestState(t)
	p := addPoint(t, s, at(100, 100), "p", points.Personal)

	var n int
	s.On(EventHighlightChanged, func(interface{}) { n++ })

	s.PointerMove(at(300, 300))
	assert.False(t, s.Scene().HasHighlight)

	s.PointerMove(at(103, 100))
	sc := s.Scene()
	assert.True(t, sc.HasHighlight)
	assert.Equal(t, p.ID, sc.Highlight)

	s.PointerMove(at(104, 101))
	s.PointerLeave()
	assert.False(t, s.Scene().HasHighlight)
	assert.Equal(t, 2, n)
}

func TestState_SurfaceCanAnswerSynchronously(t *testing.T) {
	s := NewState(config.Default())
	surf := &recordingSurface{}
	surf.answer = func(req editor.Request) {
		_ = s.CommitEditor(editor.Fields{Label: "from surface", Category: points.ResearchProject})
	}
	s.SetSurface(surf)

	click(s, at(10, 20))
	all := s.Points()
	require.Len(t, all, 1)
	assert.Equal(t, "from surface", all[0].Label)
}

func TestState_StatusMessages(t *testing.T) {
	s, _ := newTestState(t)
	var msgs []interface{}
	s.On(EventStatus, func(data interface{}) { msgs = append(msgs, data) })

	addPoint(t, s, at(10, 10), "one", points.Personal)
	click(s, at(10, 10))
	require.NoError(t, s.DeleteEditorTarget())

	assert.Equal(t, []interface{}{`Added "one"`, `Deleted "one"`}, msgs)
}
