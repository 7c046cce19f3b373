package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
	"github.com/abhisek/precis/internal/workflow"
)

const passage = `Ocean heat drives storms. Warmer ocean water feeds stronger storms, and ocean heat shifts rainfall over land.`

type fakeSummarizer struct{}

func (fakeSummarizer) Summarize(_ context.Context, _ summarize.SummaryInput) (*summarize.Summary, error) {
	text := "Warmer oceans feed stronger storms and shift rainfall across the land every single year."
	n := summarize.CountWords(text)
	return &summarize.Summary{Text: text, WordCount: n, WithinTarget: summarize.WithinTarget(n)}, nil
}

func (fakeSummarizer) Feedback(_ context.Context, in summarize.FeedbackInput) (*summarize.Feedback, error) {
	return &summarize.Feedback{
		Criteria: []summarize.Criterion{
			{ID: summarize.CriterionContent, Name: "내용 완성도", Score: 4, Comment: "Main idea is there."},
		},
		Overall:   "Clear and concise.",
		Revised:   "Warm oceans fuel storms.",
		WordCount: summarize.CountWords(in.TeacherSummary),
	}, nil
}

func (fakeSummarizer) TranslateKeywords(_ context.Context, words []string) (map[string]string, error) {
	out := map[string]string{}
	for _, w := range words {
		out[w] = "뜻:" + w
	}
	return out, nil
}

type memRecorder struct {
	got []*survey.Response
}

func (m *memRecorder) Record(_ context.Context, r *survey.Response) error {
	m.got = append(m.got, r)
	return nil
}

func newScreen(t *testing.T) (*SessionScreen, *memRecorder) {
	t.Helper()
	rec := &memRecorder{}
	runner := workflow.NewRunner(workflow.Deps{
		Summarizer: fakeSummarizer{},
		Vocab: vocab.NewCatalog(
			vocab.NewSet(grade.EraA, "ocean", "heat", "storm"),
			vocab.NewSet(grade.EraB, "ocean", "warm", "rain", "storms"),
		),
		Survey: rec,
		Now:    func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) },
	})
	s := New(runner)
	s.Init()
	return s, rec
}

func ctrl(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }
func key(r rune) tea.KeyPressMsg  { return tea.KeyPressMsg{Code: r, Text: string(r)} }

var esc = tea.KeyPressMsg{Code: tea.KeyEscape}

// finish runs the async half of cmd and feeds its result back to the
// screen. Spinner ticks are dropped.
func finish(t *testing.T, s *SessionScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	var msgs []tea.Msg
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	} else {
		msgs = append(msgs, cmd())
	}
	for _, m := range msgs {
		switch m.(type) {
		case preparedMsg, reviewedMsg, surveySubmittedMsg:
			_, next := s.Update(m)
			return next
		}
	}
	t.Fatalf("no workflow result in %#v", msgs)
	return nil
}

func toSummary(t *testing.T, s *SessionScreen) {
	t.Helper()
	s.form.passage.SetValue(passage)
	_, cmd := s.Update(ctrl('s'))
	assert.NotEmpty(t, s.busy)
	finish(t, s, cmd)
	require.Equal(t, workflow.StageSummary, s.Session().Stage)
}

func toFeedback(t *testing.T, s *SessionScreen) {
	t.Helper()
	toSummary(t, s)
	s.writer.SetValue("Warmer oceans feed stronger storms.")
	_, cmd := s.Update(ctrl('s'))
	finish(t, s, cmd)
	require.Equal(t, workflow.StageFeedback, s.Session().Stage)
}

func TestPrepareMovesToSummary(t *testing.T) {
	s, _ := newScreen(t)
	assert.Equal(t, "New Passage", s.Title())
	assert.False(t, s.InterceptsBack(), "Esc leaves an untouched form")

	toSummary(t, s)

	assert.Empty(t, s.busy)
	assert.Equal(t, "Write Summary", s.Title())
	assert.True(t, s.InterceptsBack())
	sess := s.Session()
	assert.Equal(t, grade.Tier1, sess.Passage.Grade)
	assert.Contains(t, sess.Keywords, "ocean")
	require.NotNil(t, sess.Reference)

	view := s.View(100, 40)
	assert.Contains(t, view, "ocean")
	assert.Contains(t, view, "뜻:ocean")
}

func TestPrepareRejectsEmptyPassage(t *testing.T) {
	s, _ := newScreen(t)

	_, cmd := s.Update(ctrl('s'))
	finish(t, s, cmd)

	assert.Equal(t, workflow.StageInput, s.Session().Stage)
	assert.Equal(t, "지문을 입력해 주세요.", s.errMsg)
	assert.Contains(t, s.View(100, 40), "지문을 입력해 주세요.")
}

func TestKeysIgnoredWhileBusy(t *testing.T) {
	s, _ := newScreen(t)
	s.form.passage.SetValue(passage)
	s.Update(ctrl('s'))

	_, cmd := s.Update(ctrl('s'))
	assert.Nil(t, cmd)
	assert.True(t, s.InterceptsBack())
}

func TestReviewAndRevise(t *testing.T) {
	s, _ := newScreen(t)
	toFeedback(t, s)

	sess := s.Session()
	require.NotNil(t, sess.Feedback)
	require.NotNil(t, sess.Vocabulary)
	assert.Equal(t, "Warmer oceans feed stronger storms.", sess.TeacherSummary)

	view := s.View(100, 60)
	assert.Contains(t, view, "Clear and concise.")
	assert.Contains(t, view, "어휘 분석")

	s.reviser.SetValue("Warm oceans feed storm")
	s.Update(key('s'))
	assert.Equal(t, "Warm oceans feed storms", s.Session().Revision)
	require.NotNil(t, s.Session().RevisionStats)
	// warm and storms are on the 2022 list out of four distinct words.
	assert.Contains(t, s.View(100, 60), "수정본 기본어휘 비율 50.0% (2/4)")

	// Resubmitting sends the revision.
	_, cmd := s.Update(ctrl('s'))
	finish(t, s, cmd)
	assert.Equal(t, "Warm oceans feed storms", s.Session().TeacherSummary)
	assert.Empty(t, s.Session().Revision)
}

func TestFeedbackActions(t *testing.T) {
	s, _ := newScreen(t)
	toFeedback(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.True(t, s.onActions)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, actionNewPassage, s.action)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	sess := s.Session()
	assert.Equal(t, workflow.StageInput, sess.Stage)
	assert.Empty(t, sess.TeacherSummary)
	assert.Equal(t, "고1", sess.Teacher.Grade, "teacher info survives a new passage")
	assert.Equal(t, fieldSourceType, s.form.focus)
}

func TestLeaveNeedsConfirmation(t *testing.T) {
	s, _ := newScreen(t)
	toSummary(t, s)

	s.Update(esc)
	assert.Equal(t, confirmLeave, s.confirm)
	assert.Contains(t, s.View(80, 24), "세션을 떠날까요?")

	_, cmd := s.Update(key('n'))
	assert.Nil(t, cmd)
	assert.Equal(t, confirmNone, s.confirm)

	s.Update(esc)
	_, cmd = s.Update(key('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestRestartClearsTeacher(t *testing.T) {
	s, _ := newScreen(t)
	toSummary(t, s)

	s.Update(ctrl('r'))
	assert.Equal(t, confirmRestart, s.confirm)
	s.Update(key('y'))

	sess := s.Session()
	assert.Equal(t, workflow.StageInput, sess.Stage)
	assert.Equal(t, survey.TeacherInfo{}, sess.Teacher)
	assert.Equal(t, fieldTeacherGrade, s.form.focus)
}

func TestSurveyFlow(t *testing.T) {
	s, rec := newScreen(t)
	toFeedback(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.action = actionSurvey
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, workflow.StageSurvey, s.Session().Stage)

	// First item scored with a digit; the cursor advances.
	s.Update(key('5'))
	assert.Equal(t, 5, s.survey.resp.Scores[survey.ItemKeys()[0]])
	assert.Equal(t, 1, s.survey.cursor)

	// No consent yet.
	_, cmd := s.Update(ctrl('s'))
	finish(t, s, cmd)
	assert.Equal(t, workflow.StageSurvey, s.Session().Stage)
	assert.Equal(t, "연구 참여에 동의해야 제출할 수 있습니다.", s.errMsg)
	assert.Empty(t, rec.got)

	s.survey.moveTo(s.survey.consentRow())
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	require.True(t, s.survey.resp.Consent)

	_, cmd = s.Update(ctrl('s'))
	finish(t, s, cmd)

	sess := s.Session()
	assert.Equal(t, workflow.StageDone, sess.Stage)
	require.Len(t, rec.got, 1)
	assert.Equal(t, sess.ParticipantID, rec.got[0].ParticipantID)
	assert.True(t, rec.got[0].Usage.ReceivedFeedback)
	assert.Contains(t, s.View(100, 40), sess.ParticipantID)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestSurveyEscReturnsToSummary(t *testing.T) {
	s, _ := newScreen(t)
	toSummary(t, s)

	s.Update(ctrl('t'))
	require.Equal(t, workflow.StageSurvey, s.Session().Stage)

	s.Update(esc)
	assert.Equal(t, workflow.StageSummary, s.Session().Stage)
	assert.Equal(t, confirmNone, s.confirm)
}

func TestFormSkipsTrackForFirstYear(t *testing.T) {
	f := newForm(survey.TeacherInfo{})
	f.setFocus(fieldGrade)

	f.move(1)
	assert.Equal(t, fieldItemInfo, f.focus)

	f.choices[fieldGrade].Set("고2")
	f.setFocus(fieldGrade)
	f.move(1)
	assert.Equal(t, fieldTrack, f.focus)

	f.choices[fieldTrack].Set(grade.Advanced.Label())
	_, p := f.values()
	assert.Equal(t, grade.Tier2, p.Grade)
	assert.Equal(t, grade.Advanced, p.Track)
}

func TestFormPrefillsTeacher(t *testing.T) {
	teacher := survey.TeacherInfo{
		Grade:      survey.TeacherGrades[1],
		SchoolType: survey.SchoolTypes[2],
		Experience: survey.Experiences[0],
	}
	f := newForm(teacher)
	got, _ := f.values()
	assert.Equal(t, teacher, got)
}
