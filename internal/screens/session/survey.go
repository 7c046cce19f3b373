package session

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/theme"
)

// surveyForm walks the teacher through every questionnaire item, the free
// text box and the consent checkbox.
type surveyForm struct {
	resp   *survey.Response
	keys   []string
	cursor int
	text   components.TextArea
}

func newSurveyForm() surveyForm {
	return surveyForm{
		resp: survey.NewResponse(),
		keys: survey.ItemKeys(),
		text: components.NewTextArea("자유 의견 (선택)", "도구에 대한 의견을 자유롭게 남겨 주세요", 70, 3),
	}
}

func (f *surveyForm) textRow() int    { return len(f.keys) }
func (f *surveyForm) consentRow() int { return len(f.keys) + 1 }
func (f *surveyForm) rows() int       { return len(f.keys) + 2 }

func (f *surveyForm) moveTo(row int) tea.Cmd {
	if row < 0 || row >= f.rows() {
		return nil
	}
	f.cursor = row
	if row == f.textRow() {
		return f.text.Focus()
	}
	f.text.Blur()
	return nil
}

// update handles survey navigation. It returns true when the teacher asked
// to submit.
func (f *surveyForm) update(msg tea.Msg) (tea.Cmd, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.cursor == f.textRow() {
			var cmd tea.Cmd
			f.text, cmd = f.text.Update(msg)
			return cmd, false
		}
		return nil, false
	}

	key := kmsg.String()
	switch key {
	case "ctrl+s":
		return nil, true
	case "tab":
		return f.moveTo(f.cursor + 1), false
	case "shift+tab":
		return f.moveTo(f.cursor - 1), false
	}

	if f.cursor == f.textRow() {
		var cmd tea.Cmd
		f.text, cmd = f.text.Update(msg)
		return cmd, false
	}

	switch key {
	case "up", "k":
		return f.moveTo(f.cursor - 1), false
	case "down", "j", "enter":
		if f.cursor == f.consentRow() && key == "enter" {
			f.resp.Consent = !f.resp.Consent
			return nil, false
		}
		return f.moveTo(f.cursor + 1), false
	case "space", "y":
		if f.cursor == f.consentRow() {
			f.resp.Consent = !f.resp.Consent
		}
	case "left", "h":
		f.adjust(-1)
	case "right", "l":
		f.adjust(1)
	default:
		if f.cursor < len(f.keys) && len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
			f.resp.Scores[f.keys[f.cursor]] = int(key[0] - '0')
			return f.moveTo(f.cursor + 1), false
		}
	}
	return nil, false
}

func (f *surveyForm) adjust(delta int) {
	if f.cursor >= len(f.keys) {
		return
	}
	k := f.keys[f.cursor]
	v := f.resp.Scores[k] + delta
	if v >= survey.MinScore && v <= survey.MaxScore {
		f.resp.Scores[k] = v
	}
}

// response returns the answers gathered so far.
func (f *surveyForm) response() *survey.Response {
	f.resp.FeedbackText = strings.TrimSpace(f.text.Value())
	return f.resp
}

// view renders the rows around the cursor so the current item stays on
// screen.
func (f *surveyForm) view(width, height int) string {
	var lines []string
	cursorLine := 0

	item := 0
	for _, c := range survey.Categories {
		lines = append(lines, "")
		lines = append(lines, theme.SectionTitle.Render(fmt.Sprintf("%s (%s)", c.Name, c.EnglishID)))
		lines = append(lines, theme.Hint.Render(c.Caption))
		for i := 1; i <= survey.ItemsPerCategory; i++ {
			if item == f.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, f.itemLines(c, i, item == f.cursor, width)...)
			item++
		}
	}

	lines = append(lines, "")
	if f.cursor == f.textRow() {
		cursorLine = len(lines)
	}
	f.text.SetSize(max(width-6, 20), 3)
	lines = append(lines, strings.Split(f.text.View(), "\n")...)

	lines = append(lines, "")
	if f.cursor == f.consentRow() {
		cursorLine = len(lines)
	}
	box := "[ ]"
	if f.resp.Consent {
		box = "[x]"
	}
	consent := box + " 연구 목적의 응답 수집 및 활용에 동의합니다"
	if f.cursor == f.consentRow() {
		lines = append(lines, theme.Selected.Render("▸ "+consent))
	} else {
		lines = append(lines, "  "+theme.Body.Render(consent))
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("문항 %d/%d", min(f.cursor+1, len(f.keys)), len(f.keys)),
		float64(min(f.cursor, len(f.keys)))/float64(len(f.keys)),
		true, min(width-4, 60),
	)

	header := progress.View()
	body := height - 2
	if body < 1 {
		body = 1
	}
	start := cursorLine - body/2
	if start > len(lines)-body {
		start = len(lines) - body
	}
	if start < 0 {
		start = 0
	}
	end := min(start+body, len(lines))
	return header + "\n" + strings.Join(lines[start:end], "\n")
}

func (f *surveyForm) itemLines(c survey.Category, i int, selected bool, width int) []string {
	key := c.ItemKey(i)
	score := f.resp.Scores[key]

	var dots strings.Builder
	for v := survey.MinScore; v <= survey.MaxScore; v++ {
		if v == score {
			dots.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("[%d]", v)))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %d ", v)))
		}
	}

	q := fmt.Sprintf("%s. %s", key, c.Questions[i-1])
	label := survey.LikertLabel(score)
	if selected {
		return []string{
			theme.Selected.Render("▸ " + q),
			"    " + dots.String() + "  " + theme.Label.Render(label),
		}
	}
	line := lipgloss.NewStyle().MaxWidth(max(width-4, 20)).Foreground(theme.Text).Render("  " + q)
	return []string{line + "  " + theme.Label.Render(fmt.Sprintf("(%d)", score))}
}
