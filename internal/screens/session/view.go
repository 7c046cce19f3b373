package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/theme"
	"github.com/abhisek/precis/internal/vocab"
	"github.com/abhisek/precis/internal/workflow"
)

// wordCountHint describes a text's length against the summary target.
func wordCountHint(text, what string) string {
	n := summarize.CountWords(text)
	if what != "" && what != "요약문" {
		return fmt.Sprintf("%s %d 단어", what, n)
	}
	return fmt.Sprintf("%d 단어 (목표 %d-%d)", n, summarize.MinWords, summarize.MaxWords)
}

// renderWordCount colors a summary's word count by whether it meets the
// target.
func renderWordCount(text string) string {
	n := summarize.CountWords(text)
	label := wordCountHint(text, "요약문")
	switch {
	case n == 0:
		return theme.Hint.Render(label)
	case summarize.WithinTarget(n):
		return theme.OnTarget.Render("✓ " + label)
	default:
		return theme.Warning.Render("! " + label)
	}
}

func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 20)).Foreground(theme.Text).Render(text)
}

func renderNotes(s *workflow.Session, steps ...string) string {
	var b strings.Builder
	for _, step := range steps {
		for _, msg := range s.NotesFor(step) {
			b.WriteString(theme.Warning.Render(fmt.Sprintf("  ⚠ %s: %s", step, msg)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderPassageMeta(p workflow.Passage) string {
	parts := []string{p.Grade.Label()}
	if p.Track.Label() != "" {
		parts = append(parts, p.Track.Label())
	}
	if p.SourceType != "" {
		parts = append(parts, p.SourceType+" "+p.SourceYear)
	}
	if p.ItemInfo != "" {
		parts = append(parts, p.ItemInfo)
	}
	return theme.Label.Render("  " + strings.Join(parts, " · "))
}

func renderKeywords(s *workflow.Session) string {
	if len(s.Keywords) == 0 {
		return theme.Hint.Render("  (핵심어 없음)")
	}
	parts := make([]string, len(s.Keywords))
	for i, w := range s.Keywords {
		kw := theme.Keyword.Render(w)
		if g := s.Glosses[w]; g != "" {
			kw += theme.Label.Render(" (" + g + ")")
		}
		parts[i] = kw
	}
	return "  " + strings.Join(parts, "  ·  ")
}

// renderSummaryStage shows keywords and the reference summary above the
// teacher's own summary.
func (s *SessionScreen) renderSummaryStage(width int) string {
	sess := s.sess
	cw := max(width-6, 20)
	var b strings.Builder

	b.WriteString(renderPassageMeta(sess.Passage))
	b.WriteString("\n\n")
	b.WriteString(theme.SectionTitle.Render("핵심어"))
	b.WriteString("\n")
	b.WriteString(renderKeywords(sess))
	b.WriteString("\n\n")

	if ref := sess.Reference; ref != nil {
		b.WriteString(components.ProseCard("참고 요약문", wrap(ref.Text, cw-4), cw))
		b.WriteString("\n")
		b.WriteString("  " + renderWordCount(ref.Text))
		if ref.Generic {
			b.WriteString(theme.Hint.Render("  일반 지침 사용"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(theme.SectionTitle.Render("참고 요약문"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  참고 요약문을 만들지 못했습니다."))
		b.WriteString("\n")
	}
	b.WriteString(renderNotes(sess, workflow.StepGloss, workflow.StepSummary))
	b.WriteString("\n")

	s.writer.SetSize(cw, 3)
	b.WriteString(s.writer.View())
	b.WriteString("\n")
	b.WriteString("  " + renderWordCount(s.writer.Value()))
	return b.String()
}

// renderFeedbackStage shows the scrollable feedback report above the
// revision box and the action buttons.
func (s *SessionScreen) renderFeedbackStage(width, height int) string {
	cw := max(width-6, 20)

	s.reviser.SetSize(cw, 3)
	revise := s.reviser.View() + "\n" + "  " + renderWordCount(s.reviser.Value())
	if st := s.sess.RevisionStats; st != nil {
		revise += "\n" + theme.Label.Render(fmt.Sprintf("  수정본 기본어휘 비율 %.1f%% (%d/%d)",
			st.TargetRatio*100, st.TargetWords, st.TotalUniqueWords))
	}
	actions := s.renderActions()

	paneHeight := height - lipgloss.Height(revise) - lipgloss.Height(actions) - 2
	s.pane.SetWidth(width)
	s.pane.SetHeight(max(paneHeight, 3))
	s.pane.SetContent(renderReport(s.sess, cw))

	return s.pane.View() + "\n" + revise + "\n" + actions
}

func (s *SessionScreen) renderActions() string {
	buttons := make([]string, len(actionLabels))
	for i, label := range actionLabels {
		buttons[i] = components.NewButton(label, s.onActions && i == s.action).WithHotkey(actionHotkeys[i]).View()
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// renderReport renders the teacher summary, vocabulary analysis and
// criterion feedback.
func renderReport(sess *workflow.Session, cw int) string {
	var b strings.Builder

	b.WriteString(theme.SectionTitle.Render("내 요약문"))
	b.WriteString("\n")
	b.WriteString(wrap(sess.TeacherSummary, cw))
	b.WriteString("\n")
	b.WriteString("  " + renderWordCount(sess.TeacherSummary))
	b.WriteString("\n\n")

	if sess.Vocabulary != nil {
		b.WriteString(renderVocabulary(*sess.Vocabulary, cw))
		b.WriteString("\n")
	}

	fb := sess.Feedback
	if fb == nil {
		b.WriteString(renderNotes(sess, workflow.StepFeedback, workflow.StepStore))
		if len(sess.NotesFor(workflow.StepFeedback)) == 0 {
			b.WriteString(theme.Hint.Render("  피드백이 없습니다."))
		}
		return b.String()
	}

	b.WriteString(theme.SectionTitle.Render(fmt.Sprintf("평가 (평균 %.1f / 5)", fb.AverageScore())))
	b.WriteString("\n")
	for _, c := range fb.Criteria {
		b.WriteString(theme.Value.Render(fmt.Sprintf("  %s  %s", scoreStars(c.Score), c.Name)))
		b.WriteString("\n")
		if c.Comment != "" {
			b.WriteString(wrap("    "+c.Comment, cw))
			b.WriteString("\n")
		}
		if c.Suggestion != "" {
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Secondary).Render("    → " + c.Suggestion))
			b.WriteString("\n")
		}
	}

	if fb.Overall != "" {
		b.WriteString("\n")
		b.WriteString(theme.SectionTitle.Render("총평"))
		b.WriteString("\n")
		b.WriteString(wrap(fb.Overall, cw))
		b.WriteString("\n")
	}
	if fb.Revised != "" {
		b.WriteString("\n")
		b.WriteString(components.ProseCard("수정 제안", wrap(fb.Revised, cw-4), cw))
		b.WriteString("\n")
		b.WriteString("  " + renderWordCount(fb.Revised))
		b.WriteString("\n")
	}
	b.WriteString(renderNotes(sess, workflow.StepStore))
	return b.String()
}

func scoreStars(score int) string {
	score = min(max(score, 0), 5)
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// renderVocabulary shows how much of the summary falls within the basic
// vocabulary lists.
func renderVocabulary(st vocab.Stats, cw int) string {
	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render("어휘 분석"))
	b.WriteString("\n")
	if st.Degraded {
		b.WriteString(theme.Warning.Render("  ⚠ 기본 어휘 목록을 불러오지 못해 분석이 제한됩니다."))
		b.WriteString("\n")
	}
	b.WriteString(theme.Label.Render(fmt.Sprintf("  고유 단어 %d · 기본 어휘 %d · 기본 어휘 외 %d",
		st.TotalUniqueWords, st.TargetWords, st.NonTargetWords)))
	b.WriteString("\n")

	barWidth := min(cw, 60)
	for _, row := range []struct {
		label string
		ratio float64
	}{
		{"대상 어휘   ", st.TargetRatio},
		{"2015 어휘   ", st.EraARatio},
		{"2022 어휘   ", st.EraBRatio},
	} {
		b.WriteString("  ")
		b.WriteString(components.NewRatioBar(row.label, row.ratio, barWidth).View())
		b.WriteString("\n")
	}
	if len(st.NonTargetExamples) > 0 {
		b.WriteString(theme.Label.Render("  기본 어휘 외: " + strings.Join(st.NonTargetExamples, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDone thanks the teacher and shows their participant ID.
func renderDone(width int, sess *workflow.Session) string {
	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("설문에 참여해 주셔서 감사합니다!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("참여자 번호"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(sess.ParticipantID))
	b.WriteString("\n\n")
	b.WriteString(components.ArcadeButton("새 지문으로 (N)", components.ButtonIdle, 24))
	b.WriteString("\n")
	b.WriteString(components.ArcadeButton("홈으로", components.ButtonSelected, 24))

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n\n"+card)
}

// renderConfirm renders a yes/no confirmation.
func renderConfirm(width int, kind confirmKind) string {
	title, detail := "세션을 떠날까요?", "작성한 지문과 요약문은 저장되지 않습니다."
	if kind == confirmRestart {
		title, detail = "처음부터 다시 시작할까요?", "교사 정보와 지문이 모두 지워집니다."
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] 예"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] 아니요"))
	return b.String()
}

// renderBusy renders the spinner while an LLM call is in flight.
func renderBusy(width, height int, label string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + label)
}
