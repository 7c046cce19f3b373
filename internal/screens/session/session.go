package session

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
	"github.com/abhisek/precis/internal/workflow"
)

// Feedback stage actions, in button order.
const (
	actionResubmit = iota
	actionNewPassage
	actionRestart
	actionSurvey
)

var (
	actionLabels  = []string{"다시 피드백 받기", "새 지문으로", "처음부터 다시", "설문 참여"}
	actionHotkeys = []string{"^S", "^N", "^R", "^T"}
)

// confirmKind is the pending yes/no question, if any.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmLeave
	confirmRestart
)

// SessionScreen walks one teacher through a passage: input form, summary
// writing, feedback and the survey.
type SessionScreen struct {
	runner *workflow.Runner
	sess   *workflow.Session

	form    form
	writer  components.TextArea
	reviser components.TextArea
	survey  surveyForm

	// Feedback stage: reviser has focus unless onActions is set.
	onActions bool
	action    int
	pane      viewport.Model

	spin    spinner.Model
	busy    string
	errMsg  string
	confirm confirmKind
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.BackInterceptor = (*SessionScreen)(nil)
)

// New creates a SessionScreen with a fresh workflow session.
func New(runner *workflow.Runner) *SessionScreen {
	s := &SessionScreen{
		runner: runner,
		sess:   runner.Start(),
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
		pane: viewport.New(),
	}
	s.resetInputs()
	return s
}

// resetInputs rebuilds every input for the current session, keeping the
// teacher fields.
func (s *SessionScreen) resetInputs() {
	s.form = newForm(s.sess.Teacher)
	s.writer = components.NewTextArea("내 요약문", "15-20 단어의 영어 요약문을 작성하세요", 70, 3)
	s.reviser = components.NewTextArea("요약문 수정", "피드백을 반영해 요약문을 고쳐 보세요", 70, 3)
	s.survey = newSurveyForm()
	s.onActions = false
	s.action = actionResubmit
	s.errMsg = ""
	s.pane.SetYOffset(0)
}

// Session exposes the workflow state, mainly for tests.
func (s *SessionScreen) Session() *workflow.Session {
	return s.sess
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.form.setFocus(fieldTeacherGrade)
}

func (s *SessionScreen) Title() string {
	switch s.sess.Stage {
	case workflow.StageInput:
		return "New Passage"
	case workflow.StageSummary:
		return "Write Summary"
	case workflow.StageFeedback:
		return "Feedback"
	case workflow.StageSurvey:
		return "Survey"
	default:
		return "Thank You"
	}
}

// InterceptsBack keeps Esc inside the screen once there is work to lose.
func (s *SessionScreen) InterceptsBack() bool {
	return s.busy != "" || s.confirm != confirmNone || s.sess.Stage != workflow.StageInput
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.busy != "" {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if s.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Yes"},
			{Key: "N", Description: "No"},
		}
	}
	switch s.sess.Stage {
	case workflow.StageInput:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "←→", Description: "Choose"},
			{Key: "Ctrl+S", Description: "Analyze"},
			{Key: "Esc", Description: "Back"},
		}
	case workflow.StageSummary:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Get feedback"},
			{Key: "Ctrl+N", Description: "New passage"},
			{Key: "Ctrl+T", Description: "Survey"},
			{Key: "Esc", Description: "Leave"},
		}
	case workflow.StageFeedback:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Revise / Actions"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Leave"},
		}
	case workflow.StageSurvey:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Item"},
			{Key: "1-5", Description: "Score"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Back to feedback"},
		}
	default:
		return []layout.KeyHint{
			{Key: "N", Description: "New passage"},
			{Key: "Enter", Description: "Home"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case preparedMsg:
		return s.handlePrepared(msg)
	case reviewedMsg:
		return s.handleReviewed(msg)
	case surveySubmittedMsg:
		return s.handleSubmitted(msg)
	case spinner.TickMsg:
		if s.busy == "" {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, s.forward(msg)
}

// forward passes non-key messages such as cursor blinks to the focused input.
func (s *SessionScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.sess.Stage {
	case workflow.StageInput:
		cmd = s.form.update(msg)
	case workflow.StageSummary:
		s.writer, cmd = s.writer.Update(msg)
	case workflow.StageFeedback:
		if !s.onActions {
			s.reviser, cmd = s.reviser.Update(msg)
		}
	case workflow.StageSurvey:
		cmd, _ = s.survey.update(msg)
	}
	return cmd
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.busy != "" {
		return s, nil
	}

	if s.confirm != confirmNone {
		switch key {
		case "y", "Y":
			kind := s.confirm
			s.confirm = confirmNone
			if kind == confirmRestart {
				return s, s.restart()
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirm = confirmNone
		}
		return s, nil
	}

	switch s.sess.Stage {
	case workflow.StageInput:
		return s.handleInputKey(msg)
	case workflow.StageSummary:
		return s.handleSummaryKey(msg)
	case workflow.StageFeedback:
		return s.handleFeedbackKey(msg)
	case workflow.StageSurvey:
		return s.handleSurveyKey(msg)
	default:
		switch key {
		case "n", "N":
			return s, s.newPassage()
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SessionScreen) handleInputKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		teacher, p := s.form.values()
		s.errMsg = ""
		return s, s.start("지문을 분석하고 참고 요약문을 만드는 중...", s.prepare(teacher, p))
	}
	return s, s.form.update(msg)
}

func (s *SessionScreen) handleSummaryKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		s.errMsg = ""
		return s, s.start("피드백을 생성하는 중...", s.review(s.writer.Value()))
	case "ctrl+n":
		return s, s.newPassage()
	case "ctrl+r":
		s.confirm = confirmRestart
		return s, nil
	case "ctrl+t":
		return s, s.beginSurvey()
	case "esc":
		s.confirm = confirmLeave
		return s, nil
	}
	var cmd tea.Cmd
	s.writer, cmd = s.writer.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleFeedbackKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		s.confirm = confirmLeave
		return s, nil
	case "tab", "shift+tab":
		s.onActions = !s.onActions
		if s.onActions {
			s.reviser.Blur()
			return s, nil
		}
		return s, s.reviser.Focus()
	case "ctrl+s":
		return s, s.runAction(actionResubmit)
	case "ctrl+n":
		return s, s.runAction(actionNewPassage)
	case "ctrl+r":
		return s, s.runAction(actionRestart)
	case "ctrl+t":
		return s, s.runAction(actionSurvey)
	}

	if !s.onActions {
		var cmd tea.Cmd
		s.reviser, cmd = s.reviser.Update(msg)
		s.runner.AnalyzeRevision(s.sess, s.reviser.Value())
		return s, cmd
	}

	switch key {
	case "left", "h":
		if s.action > 0 {
			s.action--
		}
	case "right", "l":
		if s.action < len(actionLabels)-1 {
			s.action++
		}
	case "up", "k":
		s.pane.ScrollUp(1)
	case "down", "j":
		s.pane.ScrollDown(1)
	case "pgup":
		s.pane.PageUp()
	case "pgdown", "space":
		s.pane.PageDown()
	case "enter":
		return s, s.runAction(s.action)
	}
	return s, nil
}

func (s *SessionScreen) handleSurveyKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		if err := s.runner.BackToFeedback(s.sess); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, s.focusStage()
	}
	cmd, submit := s.survey.update(msg)
	if submit {
		s.errMsg = ""
		return s, s.start("설문 응답을 저장하는 중...", s.submit(s.survey.response()))
	}
	return s, cmd
}

func (s *SessionScreen) runAction(a int) tea.Cmd {
	switch a {
	case actionResubmit:
		return s.resubmit()
	case actionNewPassage:
		return s.newPassage()
	case actionRestart:
		s.confirm = confirmRestart
		return nil
	case actionSurvey:
		return s.beginSurvey()
	}
	return nil
}

// resubmit asks for feedback on the revision, or on the original summary
// when nothing was revised.
func (s *SessionScreen) resubmit() tea.Cmd {
	text := s.sess.Revision
	if text == "" {
		text = s.sess.TeacherSummary
	}
	s.errMsg = ""
	return s.start("수정한 요약문의 피드백을 생성하는 중...", s.review(text))
}

func (s *SessionScreen) newPassage() tea.Cmd {
	s.sess.NewPassage()
	s.resetInputs()
	return s.form.setFocus(fieldSourceType)
}

func (s *SessionScreen) restart() tea.Cmd {
	s.sess.Restart()
	s.resetInputs()
	return s.form.setFocus(fieldTeacherGrade)
}

func (s *SessionScreen) beginSurvey() tea.Cmd {
	if err := s.runner.BeginSurvey(s.sess); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.writer.Blur()
	s.reviser.Blur()
	return s.survey.moveTo(s.survey.cursor)
}

// focusStage puts focus on the main input of the current stage.
func (s *SessionScreen) focusStage() tea.Cmd {
	s.writer.Blur()
	s.reviser.Blur()
	switch s.sess.Stage {
	case workflow.StageSummary:
		return s.writer.Focus()
	case workflow.StageFeedback:
		s.onActions = false
		return s.reviser.Focus()
	}
	return nil
}

// start marks the screen busy and runs cmd alongside the spinner.
func (s *SessionScreen) start(label string, cmd tea.Cmd) tea.Cmd {
	s.busy = label
	return tea.Batch(cmd, s.spin.Tick)
}

// Async work runs on a copy of the session so View never races the
// command; the handler swaps the copy in.

func (s *SessionScreen) prepare(teacher survey.TeacherInfo, p workflow.Passage) tea.Cmd {
	work := *s.sess
	runner := s.runner
	return func() tea.Msg {
		err := runner.Prepare(context.Background(), &work, teacher, p)
		return preparedMsg{Session: &work, Err: err}
	}
}

func (s *SessionScreen) review(text string) tea.Cmd {
	work := *s.sess
	runner := s.runner
	return func() tea.Msg {
		err := runner.Review(context.Background(), &work, text)
		return reviewedMsg{Session: &work, Err: err}
	}
}

func (s *SessionScreen) submit(resp *survey.Response) tea.Cmd {
	work := *s.sess
	runner := s.runner
	return func() tea.Msg {
		err := runner.SubmitSurvey(context.Background(), &work, resp)
		return surveySubmittedMsg{Session: &work, Err: err}
	}
}

func (s *SessionScreen) handlePrepared(msg preparedMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	if msg.Err != nil {
		s.errMsg = inputError(msg.Err)
		return s, nil
	}
	s.sess = msg.Session
	s.form.blur()
	return s, s.focusStage()
}

func (s *SessionScreen) handleReviewed(msg reviewedMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	if msg.Err != nil {
		s.errMsg = inputError(msg.Err)
		return s, nil
	}
	s.sess = msg.Session
	s.reviser.SetValue("")
	s.pane.SetYOffset(0)
	return s, s.focusStage()
}

func (s *SessionScreen) handleSubmitted(msg surveySubmittedMsg) (screen.Screen, tea.Cmd) {
	s.busy = ""
	// The copy carries the failure note even when recording failed.
	s.sess = msg.Session
	if msg.Err != nil {
		s.errMsg = inputError(msg.Err)
	}
	return s, nil
}

// inputError phrases validation failures for the teacher.
func inputError(err error) string {
	switch {
	case errors.Is(err, summarize.ErrEmptyPassage):
		return "지문을 입력해 주세요."
	case errors.Is(err, summarize.ErrEmptySummary):
		return "요약문을 입력해 주세요."
	case errors.Is(err, survey.ErrConsentRequired):
		return "연구 참여에 동의해야 제출할 수 있습니다."
	}
	return err.Error()
}

func (s *SessionScreen) View(width, height int) string {
	if s.busy != "" {
		return renderBusy(width, height, s.spin.View()+" "+s.busy)
	}
	if s.confirm != confirmNone {
		return renderConfirm(width, s.confirm)
	}

	var body string
	switch s.sess.Stage {
	case workflow.StageInput:
		body = s.form.view(width)
	case workflow.StageSummary:
		body = s.renderSummaryStage(width)
	case workflow.StageFeedback:
		body = s.renderFeedbackStage(width, height)
	case workflow.StageSurvey:
		body = s.survey.view(width, height-2)
	default:
		body = renderDone(width, s.sess)
	}

	if s.errMsg != "" {
		body = theme.ErrorText.Render("  "+s.errMsg) + "\n" + body
	}
	return body
}
