package wordlists

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
	"github.com/abhisek/precis/internal/vocab"
)

// columnWidth is the width of one word column in the list.
const columnWidth = 16

// WordListsScreen shows how the reference vocabulary lists loaded and lets
// the teacher browse them.
type WordListsScreen struct {
	catalog      *vocab.Catalog
	eras         []grade.Era
	selectedEra  int
	scrollOffset int
}

var (
	_ screen.Screen          = (*WordListsScreen)(nil)
	_ screen.KeyHintProvider = (*WordListsScreen)(nil)
)

// New creates a new WordListsScreen.
func New(catalog *vocab.Catalog) *WordListsScreen {
	return &WordListsScreen{catalog: catalog, eras: grade.Eras()}
}

func (s *WordListsScreen) Init() tea.Cmd {
	return nil
}

func (s *WordListsScreen) Title() string {
	return "Vocabulary"
}

func (s *WordListsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch list"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordListsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selectedEra = (s.selectedEra + 1) % len(s.eras)
			s.scrollOffset = 0
		case "shift+tab":
			s.selectedEra = (s.selectedEra - 1 + len(s.eras)) % len(s.eras)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *WordListsScreen) report(era grade.Era) (vocab.LoadReport, bool) {
	for _, r := range s.catalog.Reports() {
		if r.Era == era {
			return r, true
		}
	}
	return vocab.LoadReport{}, false
}

func (s *WordListsScreen) View(width, height int) string {
	var b strings.Builder
	era := s.eras[s.selectedEra]

	ov := s.catalog.Overlap()
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n전체 %d개  ·  공통 %d개  ·  2015만 %d개  ·  2022만 %d개\n",
			ov.TotalUnion, ov.Common, ov.OnlyEraA, ov.OnlyEraB)))
	b.WriteString("\n")

	var tabs []string
	for i, e := range s.eras {
		count := s.catalog.Era(e).Len()
		label := fmt.Sprintf("%s (%d)", e.EditionLabel(), count)
		if r, ok := s.report(e); ok && r.Degraded() {
			label = "⚠ " + label
		}
		if i == s.selectedEra {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n")

	if r, ok := s.report(era); ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderReport(r)))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 64)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	words := s.catalog.Era(era).Words()
	if len(words) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("이 목록에는 단어가 없습니다"))
		return b.String()
	}

	cols := max(min(width-8, 64)/columnWidth, 1)
	rows := (len(words) + cols - 1) / cols
	maxVisible := max(height-10, 3)
	s.scrollOffset = min(s.scrollOffset, max(rows-maxVisible, 0))

	end := min(s.scrollOffset+maxVisible, rows)
	for row := s.scrollOffset; row < end; row++ {
		var line strings.Builder
		for c := range cols {
			i := row*cols + c
			if i >= len(words) {
				break
			}
			line.WriteString(fmt.Sprintf("%-*s", columnWidth, words[i]))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line.String())))
		b.WriteString("\n")
	}

	if end < rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d줄 더", rows-end)))
	}
	return b.String()
}

func renderReport(r vocab.LoadReport) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if r.Degraded() {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	text := fmt.Sprintf("%s  ·  %s", r.Status, r.Source)
	if r.Encoding != "" {
		text += "  ·  " + r.Encoding
	}
	if r.Err != nil {
		text += "\n" + r.Err.Error()
	}
	return style.Render(text)
}
