package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/summarize"
	"github.com/abhisek/precis/internal/survey"
	"github.com/abhisek/precis/internal/vocab"
)

const passage = `Ocean heat drives storms. Warmer ocean water feeds stronger storms, and ocean heat shifts rainfall over land.`

type fakeSummarizer struct {
	mu          sync.Mutex
	summaryErr  error
	glossErr    error
	feedbackErr error
	glossed     []string
	feedbackIn  []summarize.FeedbackInput
}

func (f *fakeSummarizer) Summarize(_ context.Context, in summarize.SummaryInput) (*summarize.Summary, error) {
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	text := "Warmer oceans feed stronger storms and shift rainfall."
	n := summarize.CountWords(text)
	return &summarize.Summary{Text: text, WordCount: n, WithinTarget: summarize.WithinTarget(n)}, nil
}

func (f *fakeSummarizer) Feedback(_ context.Context, in summarize.FeedbackInput) (*summarize.Feedback, error) {
	f.mu.Lock()
	f.feedbackIn = append(f.feedbackIn, in)
	f.mu.Unlock()
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	return &summarize.Feedback{Overall: "Clear and concise.", WordCount: summarize.CountWords(in.TeacherSummary)}, nil
}

func (f *fakeSummarizer) TranslateKeywords(_ context.Context, words []string) (map[string]string, error) {
	f.mu.Lock()
	f.glossed = append([]string(nil), words...)
	f.mu.Unlock()
	if f.glossErr != nil {
		return nil, f.glossErr
	}
	out := map[string]string{}
	for _, w := range words {
		out[w] = "뜻:" + w
	}
	return out, nil
}

type memRecorder struct {
	got []*survey.Response
	err error
}

func (m *memRecorder) Record(_ context.Context, r *survey.Response) error {
	if m.err != nil {
		return m.err
	}
	m.got = append(m.got, r)
	return nil
}

type fixture struct {
	runner   *Runner
	sum      *fakeSummarizer
	rec      *memRecorder
	store    *store.Store
	observed []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := &fixture{sum: &fakeSummarizer{}, rec: &memRecorder{}, store: st}
	f.runner = NewRunner(Deps{
		Summarizer: f.sum,
		Vocab: vocab.NewCatalog(
			vocab.NewSet(grade.EraA, "ocean", "heat", "storm"),
			vocab.NewSet(grade.EraB, "ocean", "warm", "rain", "storms"),
		),
		Events:          st.EventRepo(),
		Survey:          f.rec,
		ObserveAnalysis: func(g string, degraded bool) { f.observed = append(f.observed, g) },
		Now:             func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) },
	})
	return f
}

var teacher = survey.TeacherInfo{Grade: "고1", SchoolType: "일반고", Experience: "5년 미만"}

func tier1Passage() Passage {
	return Passage{Text: passage, Grade: grade.Tier1, Track: grade.Advanced, SourceType: "모의고사", SourceYear: "2024"}
}

func TestPrepare(t *testing.T) {
	f := newFixture(t)
	s := f.runner.Start()

	require.NoError(t, f.runner.Prepare(context.Background(), s, teacher, tier1Passage()))

	assert.Equal(t, StageSummary, s.Stage)
	assert.Equal(t, []string{"ocean", "heat", "storms", "drives", "warmer"}, s.Keywords)
	assert.Equal(t, s.Keywords, f.sum.glossed)
	assert.Equal(t, "뜻:ocean", s.Glosses["ocean"])
	require.NotNil(t, s.Reference)
	assert.Equal(t, grade.NoTrack, s.Passage.Track, "tier1 ignores the track")
	assert.Empty(t, s.Notes)
}

func TestPrepare_CollaboratorFailuresBecomeNotes(t *testing.T) {
	f := newFixture(t)
	f.sum.glossErr = errors.New("gloss down")
	f.sum.summaryErr = errors.New("summary down")
	s := f.runner.Start()

	require.NoError(t, f.runner.Prepare(context.Background(), s, teacher, tier1Passage()))

	assert.Equal(t, StageSummary, s.Stage)
	assert.Nil(t, s.Reference)
	assert.Empty(t, s.Glosses)
	assert.NotEmpty(t, s.Keywords)
	assert.Equal(t, []string{"gloss down"}, s.NotesFor(StepGloss))
	assert.Equal(t, []string{"summary down"}, s.NotesFor(StepSummary))
}

func TestPrepare_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.runner.Start()
	assert.ErrorIs(t, f.runner.Prepare(ctx, s, teacher, Passage{Text: "   ", Grade: grade.Tier1}), summarize.ErrEmptyPassage)
	assert.Error(t, f.runner.Prepare(ctx, s, teacher, Passage{Text: passage}))

	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	assert.ErrorIs(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()), ErrWrongStage)
}

func TestReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))

	require.NoError(t, f.runner.Review(ctx, s, "  Warm ocean water makes storms stronger.  "))

	assert.Equal(t, StageFeedback, s.Stage)
	assert.Equal(t, "Warm ocean water makes storms stronger.", s.TeacherSummary)
	require.NotNil(t, s.Vocabulary)
	assert.Equal(t, 6, s.Vocabulary.TotalUniqueWords)
	assert.Equal(t, 3, s.Vocabulary.TargetWords, "tier1 scores against the 2022 list")
	require.NotNil(t, s.Feedback)
	assert.Equal(t, tier1Passage().Text, f.sum.feedbackIn[0].Passage)
	assert.Equal(t, []string{"tier1"}, f.observed)

	events, err := f.store.EventRepo().QueryAnalyses(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "tier1", events[0].Grade)
	assert.Equal(t, 6, events[0].SummaryWords)
	assert.Equal(t, 3, events[0].TargetWords)
}

func TestReview_FeedbackFailureKeepsAnalysis(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	f.sum.feedbackErr = errors.New("rate limited")

	require.NoError(t, f.runner.Review(ctx, s, "Storms grow over warm ocean water."))

	assert.Equal(t, StageFeedback, s.Stage)
	assert.Nil(t, s.Feedback)
	assert.NotNil(t, s.Vocabulary)
	assert.Equal(t, []string{"rate limited"}, s.NotesFor(StepFeedback))
}

func TestReview_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()

	assert.ErrorIs(t, f.runner.Review(ctx, s, "text"), ErrWrongStage)
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	assert.ErrorIs(t, f.runner.Review(ctx, s, " "), summarize.ErrEmptySummary)
}

func TestAnalyzeRevision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	require.NoError(t, f.runner.Review(ctx, s, "Warm ocean water makes storms stronger."))

	assert.Nil(t, f.runner.AnalyzeRevision(s, "Warm ocean water makes storms stronger."))
	stats := f.runner.AnalyzeRevision(s, "Warm rain storms.")
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TargetWords)
	assert.Equal(t, "Warm rain storms.", s.Revision)

	assert.Nil(t, f.runner.AnalyzeRevision(s, ""))
	assert.Nil(t, s.RevisionStats)
}

func TestSubmitSurvey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	require.NoError(t, f.runner.Review(ctx, s, "Warm ocean water makes storms stronger."))
	require.NoError(t, f.runner.BeginSurvey(s))

	resp := survey.NewResponse()
	assert.ErrorIs(t, f.runner.SubmitSurvey(ctx, s, resp), survey.ErrConsentRequired)
	assert.Equal(t, StageSurvey, s.Stage)

	resp.Consent = true
	require.NoError(t, f.runner.SubmitSurvey(ctx, s, resp))

	assert.Equal(t, StageDone, s.Stage)
	require.Len(t, f.rec.got, 1)
	got := f.rec.got[0]
	assert.Equal(t, teacher, got.Teacher)
	assert.Equal(t, "고1", got.Usage.GradeLevel)
	assert.Equal(t, "모의고사", got.Usage.SourceType)
	assert.True(t, got.Usage.CompletedSummary)
	assert.True(t, got.Usage.ReceivedFeedback)
	assert.True(t, got.Usage.VocabAnalysisCompleted)
	assert.Equal(t, got.ParticipantID, s.ParticipantID)
	assert.Contains(t, got.ParticipantID, "P20250601_090000_")

	assert.ErrorIs(t, f.runner.BeginSurvey(s), ErrWrongStage)
}

func TestSubmitSurvey_RecorderFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))
	require.NoError(t, f.runner.BeginSurvey(s))
	f.rec.err = errors.New("sheet unavailable")

	resp := survey.NewResponse()
	resp.Consent = true
	require.Error(t, f.runner.SubmitSurvey(ctx, s, resp))
	assert.Equal(t, StageSurvey, s.Stage)
	assert.Equal(t, []string{"sheet unavailable"}, s.NotesFor(StepSurvey))

	require.NoError(t, f.runner.BackToFeedback(s))
	assert.Equal(t, StageSummary, s.Stage, "nothing reviewed yet")
}

func TestNewPassageAndRestart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.runner.Start()
	id := s.ID
	require.NoError(t, f.runner.Prepare(ctx, s, teacher, tier1Passage()))

	s.NewPassage()
	assert.Equal(t, StageInput, s.Stage)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, teacher, s.Teacher)
	assert.Empty(t, s.Keywords)
	assert.Nil(t, s.Reference)

	s.Restart()
	assert.Equal(t, survey.TeacherInfo{}, s.Teacher)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "input", StageInput.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
