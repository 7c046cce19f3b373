package session

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/theme"
	"github.com/abhisek/precis/internal/workflow"
)

// Form fields in focus order. Choice fields come first so they index
// form.choices directly.
const (
	fieldTeacherGrade = iota
	fieldSchoolType
	fieldExperience
	fieldSourceType
	fieldSourceYear
	fieldGrade
	fieldTrack
	fieldItemInfo
	fieldPassage
	fieldCount
)

const numChoices = fieldTrack + 1

// form collects teacher info and the passage at the input stage.
type form struct {
	choices  [numChoices]components.Choice
	itemInfo components.TextInput
	passage  components.TextArea
	focus    int
}

func gradeLabels() []string {
	var out []string
	for _, g := range grade.All() {
		out = append(out, g.Label())
	}
	return out
}

func trackLabels() []string {
	var out []string
	for _, t := range grade.AllTracks() {
		out = append(out, t.Label())
	}
	return out
}

// newForm builds the input form. Teacher fields are prefilled from teacher
// when it is set.
func newForm(teacher survey.TeacherInfo) form {
	f := form{
		itemInfo: components.NewTextInput("문항 정보", "예: 2024학년도 수능 31번", 80),
		passage:  components.NewTextArea("영어 지문", "분석할 영어 지문을 붙여 넣으세요...", 70, 8),
	}
	f.choices[fieldTeacherGrade] = components.NewChoice("담당 학년", survey.TeacherGrades, 0)
	f.choices[fieldSchoolType] = components.NewChoice("학교 유형", survey.SchoolTypes, 0)
	f.choices[fieldExperience] = components.NewChoice("교직 경력", survey.Experiences, 0)
	f.choices[fieldSourceType] = components.NewChoice("지문 출처", survey.SourceTypes, 0)
	f.choices[fieldSourceYear] = components.NewChoice("출제 연도", survey.SourceYears, 0)
	f.choices[fieldGrade] = components.NewChoice("대상 학년", gradeLabels(), 0)
	f.choices[fieldTrack] = components.NewChoice("과목 유형", trackLabels(), 0)

	if teacher != (survey.TeacherInfo{}) {
		f.choices[fieldTeacherGrade].Set(teacher.Grade)
		f.choices[fieldSchoolType].Set(teacher.SchoolType)
		f.choices[fieldExperience].Set(teacher.Experience)
	}
	return f
}

func (f *form) selectedGrade() grade.Grade {
	g, err := grade.Parse(f.choices[fieldGrade].Value())
	if err != nil {
		return grade.Unknown
	}
	return g
}

// focusable reports whether field i takes part in tab order. The track only
// applies to grades that need one.
func (f *form) focusable(i int) bool {
	if i == fieldTrack {
		return f.selectedGrade().RequiresTrack()
	}
	return true
}

// blur removes focus from every field.
func (f *form) blur() {
	for j := range f.choices {
		f.choices[j].Focused = false
	}
	f.itemInfo.Blur()
	f.passage.Blur()
}

// setFocus moves focus to field i.
func (f *form) setFocus(i int) tea.Cmd {
	f.blur()
	f.focus = i
	switch {
	case i < numChoices:
		f.choices[i].Focused = true
	case i == fieldItemInfo:
		return f.itemInfo.Focus()
	case i == fieldPassage:
		return f.passage.Focus()
	}
	return nil
}

// move shifts focus by delta, skipping fields that do not apply.
func (f *form) move(delta int) tea.Cmd {
	i := f.focus
	for range fieldCount {
		i = (i + delta + fieldCount) % fieldCount
		if f.focusable(i) {
			break
		}
	}
	return f.setFocus(i)
}

// update routes navigation keys and forwards the rest to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return f.move(1)
		case "shift+tab":
			return f.move(-1)
		case "up", "down":
			// The passage area uses arrows for its cursor.
			if f.focus != fieldPassage {
				if kmsg.String() == "up" {
					return f.move(-1)
				}
				return f.move(1)
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case f.focus < numChoices:
		f.choices[f.focus], cmd = f.choices[f.focus].Update(msg)
	case f.focus == fieldItemInfo:
		f.itemInfo, cmd = f.itemInfo.Update(msg)
	case f.focus == fieldPassage:
		f.passage, cmd = f.passage.Update(msg)
	}
	return cmd
}

// values reads the form into the workflow's inputs.
func (f *form) values() (survey.TeacherInfo, workflow.Passage) {
	teacher := survey.TeacherInfo{
		Grade:      f.choices[fieldTeacherGrade].Value(),
		SchoolType: f.choices[fieldSchoolType].Value(),
		Experience: f.choices[fieldExperience].Value(),
	}
	p := workflow.Passage{
		Text:       f.passage.Value(),
		Grade:      f.selectedGrade(),
		SourceType: f.choices[fieldSourceType].Value(),
		SourceYear: f.choices[fieldSourceYear].Value(),
		ItemInfo:   strings.TrimSpace(f.itemInfo.Value()),
	}
	if p.Grade.RequiresTrack() {
		p.Track, _ = grade.ParseTrack(f.choices[fieldTrack].Value())
	}
	return teacher, p
}

func (f *form) view(width int) string {
	var b strings.Builder

	b.WriteString(theme.SectionTitle.Render("교사 정보"))
	b.WriteString("\n")
	for _, i := range []int{fieldTeacherGrade, fieldSchoolType, fieldExperience} {
		b.WriteString(f.choices[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.SectionTitle.Render("지문 정보"))
	b.WriteString("\n")
	for _, i := range []int{fieldSourceType, fieldSourceYear, fieldGrade} {
		b.WriteString(f.choices[i].View())
		b.WriteString("\n")
	}
	if f.focusable(fieldTrack) {
		b.WriteString(f.choices[fieldTrack].View())
		b.WriteString("\n")
	}
	b.WriteString(f.itemInfo.View())
	b.WriteString("\n\n")

	f.passage.SetSize(max(width-6, 20), 8)
	b.WriteString(f.passage.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  " + wordCountHint(f.passage.Value(), "지문")))
	return b.String()
}
