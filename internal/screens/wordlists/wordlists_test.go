package wordlists

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/vocab"
)

func TestTabsSwitchEra(t *testing.T) {
	s := New(vocab.NewCatalog(
		vocab.NewSet(grade.EraA, "ocean", "heat"),
		vocab.NewSet(grade.EraB, "ocean", "rainfall"),
	))

	view := s.View(100, 30)
	assert.Contains(t, view, "전체 3개")
	assert.Contains(t, view, "heat")
	assert.NotContains(t, view, "rainfall")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view = s.View(100, 30)
	assert.Contains(t, view, "rainfall")
	assert.NotContains(t, view, "heat")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 0, s.selectedEra, "tabs wrap around")
}

func TestEmptyListIsFlagged(t *testing.T) {
	s := New(vocab.NewCatalog(vocab.NewSet(grade.EraA, "ocean"), nil))
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	view := s.View(100, 30)
	assert.Contains(t, view, "⚠")
	assert.Contains(t, view, "이 목록에는 단어가 없습니다")
}

func TestScrollIsClamped(t *testing.T) {
	s := New(vocab.NewCatalog(vocab.NewSet(grade.EraA, "a", "b"), nil))
	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.View(100, 30)
	assert.Equal(t, 0, s.scrollOffset)
}
