package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
)

// pageSize bounds how many analyses are loaded.
const pageSize = 50

type historyLoadedMsg struct {
	Analyses []store.AnalysisEvent
	Err      error
}

// HistoryScreen lists past vocabulary analyses of teacher summaries.
type HistoryScreen struct {
	eventRepo store.EventRepo
	analyses  []store.AnalysisEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		analyses, err := repo.QueryAnalyses(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Analyses: analyses, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.analyses = msg.Analyses
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.analyses)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.analyses) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  아직 분석 기록이 없습니다. 새 지문으로 시작해 보세요!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTotals(s.analyses)))
	b.WriteString("\n\n")

	for i, a := range s.analyses {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		lengthMark := "✓"
		if !summarize.WithinTarget(a.SummaryWords) {
			lengthMark = "!"
		}
		line := fmt.Sprintf("%s%s  %-4s %-10s  %2d단어 %s  기본어휘 %5.1f%%",
			prefix,
			a.Timestamp.Format("2006-01-02 15:04"),
			gradeLabel(a.Grade),
			a.SourceType,
			a.SummaryWords, lengthMark,
			a.TargetRatio*100,
		)

		style := lipgloss.NewStyle().Foreground(ratioColor(a.TargetRatio, a.Degraded))
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range details(a) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func renderTotals(analyses []store.AnalysisEvent) string {
	var sum float64
	within := 0
	for _, a := range analyses {
		sum += a.TargetRatio
		if summarize.WithinTarget(a.SummaryWords) {
			within++
		}
	}
	avg := sum / float64(len(analyses))
	return lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(
		"최근 %d건  ·  평균 기본어휘 비율 %.1f%%  ·  길이 기준 충족 %d건", len(analyses), avg*100, within))
}

func details(a store.AnalysisEvent) []string {
	out := []string{
		fmt.Sprintf("    지문 %d단어  ·  고유 단어 %d개 중 기본 어휘 %d개", a.PassageWords, a.TotalUniqueWords, a.TargetWords),
		fmt.Sprintf("    2015 어휘 %.1f%%  ·  2022 어휘 %.1f%%", a.EraARatio*100, a.EraBRatio*100),
	}
	if t, err := grade.ParseTrack(a.Track); err == nil && t != grade.NoTrack {
		out = append(out, "    과목 유형: "+t.Label())
	}
	if len(a.Keywords) > 0 {
		out = append(out, "    핵심어: "+strings.Join(a.Keywords, ", "))
	}
	if a.Degraded {
		out = append(out, "    ⚠ 어휘 목록 일부를 불러오지 못한 상태의 분석")
	}
	return out
}

func gradeLabel(s string) string {
	g, err := grade.Parse(s)
	if err != nil {
		return s
	}
	return g.Label()
}

func ratioColor(ratio float64, degraded bool) color.Color {
	switch {
	case degraded:
		return theme.TextDim
	default:
		return components.CoverageColor(ratio)
	}
}
