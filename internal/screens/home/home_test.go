package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/precis/internal/screens/session"
	"github.com/abhisek/precis/internal/screens/standards"
	"github.com/abhisek/precis/internal/screens/wordlists"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/vocab"
	"github.com/abhisek/precis/internal/workflow"
)

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func enter(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestNoLLMOpensNotice(t *testing.T) {
	h := New(Deps{})

	assert.Equal(t, MascotAlert, h.mascot)
	assert.Contains(t, h.View(120, 40), "Set an LLM API key")
	assert.IsType(t, &placeholder.PlaceholderScreen{}, pushed(t, enter(h)))
}

func TestNewPassageOpensSession(t *testing.T) {
	vc := vocab.NewCatalog(vocab.NewSet(grade.EraA, "ocean"), vocab.NewSet(grade.EraB, "storm"))
	h := New(Deps{Runner: workflow.NewRunner(workflow.Deps{Vocab: vc}), Vocab: vc, Provider: "openai"})

	assert.Equal(t, MascotIdle, h.mascot)
	view := h.View(120, 40)
	assert.NotContains(t, view, "Set an LLM API key")
	assert.Contains(t, view, "OPENAI")
	assert.Contains(t, view, "2 WORDS")
	assert.IsType(t, &sessionscreen.SessionScreen{}, pushed(t, enter(h)))
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	h := New(Deps{})

	// Curriculum and history are disabled without their dependencies.
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, itemVocabulary, h.menu.Selected)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, itemExit, h.menu.Selected)
}

func TestDigitOpensItem(t *testing.T) {
	h := New(Deps{})
	assert.Contains(t, h.View(120, 40), "3  WORD LISTS")

	_, cmd := h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.IsType(t, &wordlists.WordListsScreen{}, pushed(t, cmd))

	// Disabled items ignore their digit.
	_, cmd = h.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Nil(t, cmd)
}

func TestCurriculumAndHistory(t *testing.T) {
	cat, err := curriculum.LoadDefault()
	require.NoError(t, err)
	st, err := store.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.EventRepo().AppendAnalysis(context.Background(), store.AnalysisEventData{Grade: "tier1"}))

	h := New(Deps{Curriculum: cat, Events: st.EventRepo()})
	assert.Equal(t, 1, h.analyses)
	assert.Contains(t, h.View(120, 40), "1 ANALYSES")

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.IsType(t, &standards.BrowserScreen{}, pushed(t, enter(h)))

	require.NoError(t, st.EventRepo().AppendAnalysis(context.Background(), store.AnalysisEventData{Grade: "tier2"}))
	h.Resume()
	assert.Equal(t, 2, h.analyses)
	assert.Equal(t, MascotAlert, h.mascot, "no LLM configured")
}

func TestExitQuits(t *testing.T) {
	h := New(Deps{})
	h.menu.Selected = itemExit
	cmd := enter(h)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
