package history

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/store"
)

func newRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestEmptyHistory(t *testing.T) {
	s := New(newRepo(t))
	assert.Contains(t, s.View(100, 30), "Loading")

	load(t, s)
	assert.Contains(t, s.View(100, 30), "아직 분석 기록이 없습니다")
}

func TestListsAnalysesNewestFirst(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.AppendAnalysis(ctx, store.AnalysisEventData{
		Grade: "tier1", SourceType: "모의고사", SummaryWords: 17, TargetRatio: 0.9, EraARatio: 0.25, EraBRatio: 0.9,
		Keywords: []string{"ocean", "storm"},
	}))
	require.NoError(t, repo.AppendAnalysis(ctx, store.AnalysisEventData{
		Grade: "tier2", Track: "advanced", SourceType: "교과서", SummaryWords: 25, TargetRatio: 0.5,
	}))

	s := New(repo)
	load(t, s)
	require.Len(t, s.analyses, 2)
	assert.Equal(t, "tier2", s.analyses[0].Grade)

	view := s.View(120, 30)
	assert.Contains(t, view, "최근 2건")
	assert.Contains(t, view, "평균 기본어휘 비율 70.0%")
	assert.Contains(t, view, " 50.0%")
	assert.Contains(t, view, "고2")
	assert.Contains(t, view, "교과서")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])
	expanded := s.View(120, 30)
	assert.Contains(t, expanded, "핵심어: ocean, storm")
	assert.Contains(t, expanded, "2015 어휘 25.0%  ·  2022 어휘 90.0%")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected, "cursor stops at the last row")
}
