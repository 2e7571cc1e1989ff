package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"axescanvas/internal/points"
)

func TestDefault_AllVisible(t *testing.T) {
	s := Default()
	for _, c := range points.Categories {
		assert.True(t, s.Visible(c), c.String())
	}
}

func TestState_ToggleIsIndependent(t *testing.T) {
	s := Default()
	assert.False(t, s.Toggle(points.Personal))

	assert.False(t, s.Visible(points.Personal))
	assert.True(t, s.Visible(points.ResearchProject))
	assert.True(t, s.Visible(points.ProjectKeyPhrase))

	assert.True(t, s.Toggle(points.Personal))
	assert.Equal(t, Default(), s)
}

func TestState_SetAndUnknownCategory(t *testing.T) {
	s := Default()
	s.Set(points.ProjectKeyPhrase, false)
	assert.False(t, s.ShowProjectKeyPhrase)

	s.Set(points.Category(99), false)
	assert.False(t, s.ShowPersonal)
	assert.False(t, s.Visible(points.Category(99)))
	assert.True(t, s.ShowResearchProject)
}

func TestPhraseSelection_Toggle(t *testing.T) {
	var p PhraseSelection
	_, ok := p.Active()
	assert.False(t, ok)

	p.Toggle("posthuman")
	got, ok := p.Active()
	assert.True(t, ok)
	assert.Equal(t, "posthuman", got)

	p.Toggle("writing")
	got, _ = p.Active()
	assert.Equal(t, "writing", got)

	p.Toggle("writing")
	_, ok = p.Active()
	assert.False(t, ok)
}

func TestPhraseSelection_ToggleTwiceReturnsToNone(t *testing.T) {
	var p PhraseSelection
	p.Toggle("biotic game")
	p.Toggle("biotic game")
	got, ok := p.Active()
	assert.False(t, ok)
	assert.Empty(t, got)
}
