package standards

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
)

func loadCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	c, err := curriculum.LoadDefault()
	require.NoError(t, err)
	return c
}

func TestCursorSkipsHeaders(t *testing.T) {
	s := New(loadCatalog(t))

	require.NotNil(t, s.Selected())
	assert.Equal(t, grade.Tier1, s.Selected().Grade)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	require.NotNil(t, s.Selected(), "header rows are never selected")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.NotNil(t, s.Selected())
	assert.Equal(t, grade.Tier2, s.Selected().Grade, "tier1 has a single descriptor")
}

func TestTabJumpsGrade(t *testing.T) {
	s := New(loadCatalog(t))

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, grade.Tier2, s.Selected().Grade)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, grade.Tier3, s.Selected().Grade)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, grade.Tier2, s.Selected().Grade)
}

func TestEnterOpensDetail(t *testing.T) {
	s := New(loadCatalog(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	detail, ok := push.Screen.(*DetailScreen)
	require.True(t, ok)
	assert.Equal(t, "고1", detail.Title())

	view := detail.View(100, 200)
	assert.Contains(t, view, "성취수준")
	assert.Contains(t, view, "요약문 작성 지침")
}

func TestViewListsEveryDescriptor(t *testing.T) {
	c := loadCatalog(t)
	s := New(c)
	view := s.View(120, 100)
	for _, d := range c.All() {
		assert.Contains(t, view, d.Edition)
	}
}
