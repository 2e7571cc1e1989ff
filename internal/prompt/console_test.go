package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"axescanvas/internal/app"
	"axescanvas/internal/config"
	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script runs input through a fresh console and returns the state and output.
func script(t *testing.T, input string) (*app.State, string) {
	t.Helper()
	state := app.NewState(config.Default())
	var out bytes.Buffer
	c := NewConsole(state, strings.NewReader(input), &out)
	require.NoError(t, c.Run(context.Background()))
	return state, out.String()
}

func TestConsole_AddPoint(t *testing.T) {
	state, out := script(t, `
down 100 100
up 100 100
Machine dreams
2
list
quit
`)
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "Machine dreams", pts[0].Label)
	assert.Equal(t, points.ResearchProject, pts[0].Category)
	assert.Equal(t, geometry.NewPoint2D(100, 100), pts[0].Pos)
	assert.Contains(t, out, "Add Point at (100, 100)")
	assert.Contains(t, out, `#1 (100, 100) "Machine dreams" Research Project Trait`)
}

func TestConsole_EmptyLabelReasks(t *testing.T) {
	state, out := script(t, "down 10 10\nup 10 10\n\n   \nok\n\n")
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "ok", pts[0].Label)
	assert.Equal(t, points.DefaultCategory, pts[0].Category)
	assert.Equal(t, 2, strings.Count(out, "Please enter a label for this point"))
}

func TestConsole_CancelKeyword(t *testing.T) {
	state, out := script(t, "down 10 10\nup 10 10\ncancel\nlist\n")
	assert.Empty(t, state.Points())
	assert.Contains(t, out, "Cancelled")
	assert.Contains(t, out, "No points")
	_, open := state.EditorRequest()
	assert.False(t, open)
}

func TestConsole_EOFCancelsEditor(t *testing.T) {
	state, _ := script(t, "down 10 10\nup 10 10\n")
	assert.Empty(t, state.Points())
	_, open := state.EditorRequest()
	assert.False(t, open)
}

func TestConsole_EditKeepsPrefill(t *testing.T) {
	state, _ := script(t, `
down 50 50
up 50 50
first
1
down 51 50
up 51 50

3
`)
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "first", pts[0].Label)
	assert.Equal(t, points.ProjectKeyPhrase, pts[0].Category)
}

func TestConsole_DeleteKeyword(t *testing.T) {
	state, out := script(t, `
down 50 50
up 50 50
a

down 200 200
up 200 200
b

down 50 50
up 50 50
Delete
`)
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "b", pts[0].Label)
	assert.Contains(t, out, `Deleted "a"`)
}

func TestConsole_DeleteInAddModeReasks(t *testing.T) {
	state, out := script(t, "down 10 10\nup 10 10\nDELETE\nreal\n\n")
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "real", pts[0].Label)
	assert.Contains(t, out, "Nothing to delete yet")
}

func TestConsole_CategoryByName(t *testing.T) {
	state, out := script(t, "down 10 10\nup 10 10\nx\nbogus\nkeyphrase\n")
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, points.ProjectKeyPhrase, pts[0].Category)
	assert.Contains(t, out, "Choose 1-3 or a category name")
}

func TestConsole_DragMovesWithoutPrompt(t *testing.T) {
	state, out := script(t, `
down 50 50
up 50 50
p

down 50 50
move 60 60
move 90 70
up 90 70
`)
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, geometry.NewPoint2D(90, 70), pts[0].Pos)
	assert.Equal(t, 1, strings.Count(out, "Add Point"))
	assert.NotContains(t, out, "Edit Point")
}

func TestConsole_PhrasePrefillsAdd(t *testing.T) {
	state, out := script(t, "phrase 3\ndown 10 10\nup 10 10\n\n\n")
	pts := state.Points()
	require.Len(t, pts, 1)
	assert.Equal(t, "posthuman", pts[0].Label)
	assert.Equal(t, points.ProjectKeyPhrase, pts[0].Category)
	assert.Contains(t, out, `Phrase "posthuman" selected`)
}

func TestConsole_PhraseToggleTwiceClears(t *testing.T) {
	state, out := script(t, "phrase Writing\nphrase writing\nphrase\n")
	_, ok := state.ActivePhrase()
	assert.False(t, ok)
	assert.Contains(t, out, "Phrase cleared")
	assert.Contains(t, out, "  7) writing")
}

func TestConsole_PhraseUnknown(t *testing.T) {
	state, out := script(t, "phrase nonsense words\nphrase 99\n")
	_, ok := state.ActivePhrase()
	assert.False(t, ok)
	assert.Contains(t, out, `no preset "nonsense words"`)
	assert.Contains(t, out, "choose 1-11")
}

func TestConsole_FilterMarksHidden(t *testing.T) {
	state, out := script(t, "down 10 10\nup 10 10\nme\n\nfilter personal off\nlist\n")
	assert.False(t, state.Filters().Visible(points.Personal))
	assert.Contains(t, out, "Personal Trait hidden")
	assert.Contains(t, out, `"me" Personal Trait (hidden)`)
}

func TestConsole_BadCommands(t *testing.T) {
	_, out := script(t, "jump\ndown 1\nup x 2\nfilter nobody off\nfilter personal maybe\n# comment\n")
	assert.Contains(t, out, `Unknown command "jump"`)
	assert.Contains(t, out, "down: expected X Y, got 1 values")
	assert.Contains(t, out, `up: bad X "x"`)
	assert.Contains(t, out, `unknown category "nobody"`)
	assert.Contains(t, out, `expected on or off, got "maybe"`)
}

func TestConsole_RunStopsOnCancelledContext(t *testing.T) {
	state := app.NewState(config.Default())
	c := NewConsole(state, strings.NewReader("down 1 1\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestConsole_RunCancelUnblocksWaitingRead(t *testing.T) {
	state := app.NewState(config.Default())
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsole(state, r, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
}

func TestConsole_RunCancelDuringEditorPrompt(t *testing.T) {
	state := app.NewState(config.Default())
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsole(state, r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	// Opens the add editor, which then waits for a label.
	_, err := io.WriteString(w, "down 5 5\nup 5 5\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, open := state.EditorRequest()
		return open
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
	_, open := state.EditorRequest()
	assert.False(t, open)
	assert.Empty(t, state.Points())
}
