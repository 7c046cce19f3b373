package standards

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
)

// DetailScreen shows one descriptor and the writing guideline for its grade.
type DetailScreen struct {
	desc  *curriculum.Descriptor
	guide *curriculum.WritingGuideline
	pane  viewport.Model
}

var (
	_ screen.Screen          = (*DetailScreen)(nil)
	_ screen.KeyHintProvider = (*DetailScreen)(nil)
)

func newDetail(d *curriculum.Descriptor, guide *curriculum.WritingGuideline) *DetailScreen {
	return &DetailScreen{desc: d, guide: guide, pane: viewport.New()}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.desc.Key }

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.pane, cmd = d.pane.Update(msg)
	return d, cmd
}

func (d *DetailScreen) View(width, height int) string {
	cw := min(width-8, 76)
	d.pane.SetWidth(width)
	d.pane.SetHeight(max(height, 1))
	d.pane.SetContent("\n" + renderDescriptor(d.desc, d.guide, cw))
	return d.pane.View()
}

var (
	dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle = lipgloss.NewStyle().Foreground(theme.Text)
)

func section(b *strings.Builder, title string) {
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + title))
	b.WriteString("\n")
}

func field(b *strings.Builder, label, value string, cw int) {
	if value == "" {
		return
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-10s", label)))
	b.WriteString(valStyle.Width(max(cw-12, 20)).Render(value))
	b.WriteString("\n")
}

func paragraph(b *strings.Builder, text string, cw int) {
	b.WriteString(lipgloss.NewStyle().Width(cw).PaddingLeft(2).Foreground(theme.Text).Render(text))
	b.WriteString("\n")
}

func renderDescriptor(d *curriculum.Descriptor, guide *curriculum.WritingGuideline, cw int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + d.Key))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s (%s)", d.Edition, d.Year)))
	b.WriteString("\n\n")

	field(&b, "과목", strings.Join(d.Subjects, ", "), cw)
	field(&b, "주제 범위", d.TopicRange, cw)
	field(&b, "요약 수준", d.SummaryLevel, cw)
	b.WriteString("\n")

	if d.MainAchievement != "" {
		section(&b, "핵심 성취기준")
		paragraph(&b, d.MainAchievement, cw)
		b.WriteString("\n")
	}

	if rubric := d.Rubric(); len(rubric) > 0 {
		section(&b, "성취수준")
		for _, lv := range rubric {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("  " + lv.Level))
			b.WriteString("\n")
			paragraph(&b, lv.Text, cw)
		}
		b.WriteString("\n")
	}
	if standards := d.Standards(); len(standards) > 0 {
		section(&b, "과목별 성취기준")
		for _, st := range standards {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("  " + st.Subject))
			b.WriteString("\n")
			paragraph(&b, st.Display(), cw)
		}
		b.WriteString("\n")
	}

	if len(d.KeyFeatures) > 0 {
		section(&b, "주요 특징")
		for _, f := range d.KeyFeatures {
			paragraph(&b, "• "+f, cw)
		}
		b.WriteString("\n")
	}

	section(&b, "어휘 및 문법")
	field(&b, "어휘 수준", d.VocabularyLevel, cw)
	field(&b, "기준 어휘", d.VocabularyReference, cw)
	if d.VocabularyEra != "" {
		field(&b, "어휘 목록", d.VocabularyEra.EditionLabel(), cw)
	}
	field(&b, "문법", d.GrammarComplexity, cw)
	field(&b, "친숙도", d.TextFamiliarity, cw)
	b.WriteString("\n")

	if d.AssessmentTips != "" {
		section(&b, "평가 팁")
		paragraph(&b, d.AssessmentTips, cw)
		b.WriteString("\n")
	}

	if guide != nil {
		section(&b, "요약문 작성 지침")
		field(&b, "길이", guide.LengthTarget, cw)
		field(&b, "문장 구조", guide.SentenceStructure, cw)
		field(&b, "어휘 초점", guide.VocabularyFocus, cw)
		field(&b, "기준 어휘", guide.VocabularyReference, cw)
		field(&b, "내용 초점", guide.ContentFocus, cw)
		field(&b, "수준", guide.LevelDescriptor, cw)
	}

	return b.String()
}
