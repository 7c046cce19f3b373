package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/llm"
	"github.com/abhisek/precis/internal/vocab"
)

const passage = `Scientists are studying how ocean heat changes the weather. Warmer water feeds stronger storms, and ocean heat also shifts rainfall over land.`

func newService(t *testing.T, mock *llm.MockProvider) *Service {
	t.Helper()
	cur, err := curriculum.LoadDefault()
	require.NoError(t, err)
	voc := vocab.NewCatalog(
		vocab.NewSet(grade.EraA, "ocean", "heat", "water", "storm"),
		vocab.NewSet(grade.EraB, "ocean", "weather", "warm", "rain"),
	)
	return New(mock, cur, voc, DefaultConfig())
}

func TestSummarize(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]string{
		"summary": "  Scientists study how warmer oceans strengthen storms and change rainfall, showing ocean heat shapes weather worldwide.  ",
	}))
	svc := newService(t, mock)

	sum, err := svc.Summarize(context.Background(), SummaryInput{Passage: passage, Grade: grade.Tier1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sum.Text, "Scientists"), "text is trimmed")
	assert.Equal(t, 16, sum.WordCount)
	assert.True(t, sum.WithinTarget)
	assert.False(t, sum.Generic)

	req, ok := mock.CallFor(PurposeSummary)
	require.True(t, ok)
	assert.Equal(t, "reference-summary", req.Schema.Name)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "2022 개정 교육과정")
	assert.Contains(t, msg, "A수준 목표")
	assert.Contains(t, msg, passage)
	assert.Contains(t, msg, "15-20 words")
}

func TestSummarize_TrackedGradeUsesStandards(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]string{"summary": "Short."}))
	svc := newService(t, mock)

	sum, err := svc.Summarize(context.Background(), SummaryInput{Passage: passage, Grade: grade.Tier2, Track: grade.General})
	require.NoError(t, err)
	assert.False(t, sum.WithinTarget)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "고2 (일반선택+진로선택)")
	assert.Contains(t, msg, "주요 성취기준")
	assert.Contains(t, msg, "2015년 교육부 기본 어휘")
}

func TestSummarize_FallsBackToGenericGuidance(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]string{"summary": "A summary."}))
	svc := newService(t, mock)

	// 고2 without a track has no descriptor.
	sum, err := svc.Summarize(context.Background(), SummaryInput{Passage: passage, Grade: grade.Tier2})
	require.NoError(t, err)
	assert.True(t, sum.Generic)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "no standard is registered")
}

func TestSummarize_EmptyPassage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newService(t, mock)

	_, err := svc.Summarize(context.Background(), SummaryInput{Passage: "   \n", Grade: grade.Tier1})
	assert.ErrorIs(t, err, ErrEmptyPassage)
	assert.Equal(t, 0, mock.CallCount())
}

func TestSummarize_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := newService(t, mock)

	_, err := svc.Summarize(context.Background(), SummaryInput{Passage: passage, Grade: grade.Tier1})
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}

func TestFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"criteria": []map[string]any{
			{"id": "length", "score": 2, "comment": "너무 짧습니다.", "suggestion": "15단어 이상으로 늘리세요."},
			{"id": "curriculum-fit", "score": 4, "comment": "기준에 부합합니다.", "suggestion": ""},
			{"id": "curriculum-fit", "score": 1, "comment": "duplicate", "suggestion": ""},
			{"id": "made-up", "score": 5, "comment": "ignored", "suggestion": ""},
		},
		"overall":         " 핵심은 잘 잡았습니다. ",
		"revised_summary": "Warmer oceans strengthen storms and shift rainfall, so scientists study ocean heat to understand changing weather.",
	}))
	svc := newService(t, mock)

	fb, err := svc.Feedback(context.Background(), FeedbackInput{
		Passage:        passage,
		TeacherSummary: "Ocean heat changes weather and storms.",
		Grade:          grade.Tier1,
	})
	require.NoError(t, err)

	want := []Criterion{
		{ID: CriterionCurriculumFit, Name: "교육과정 부합도", Score: 4, Comment: "기준에 부합합니다."},
		{ID: CriterionLength, Name: "길이 준수", Score: 2, Comment: "너무 짧습니다.", Suggestion: "15단어 이상으로 늘리세요."},
	}
	if diff := cmp.Diff(want, fb.Criteria); diff != "" {
		t.Errorf("criteria mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "핵심은 잘 잡았습니다.", fb.Overall)
	assert.Equal(t, 6, fb.WordCount)
	assert.False(t, fb.WithinTarget)
	assert.Equal(t, 3.0, fb.AverageScore())

	// Tier1 targets era B: ocean, weather are listed; heat, changes, and, storms are not.
	assert.Equal(t, 6, fb.Vocabulary.TotalUniqueWords)
	assert.Equal(t, 2, fb.Vocabulary.TargetWords)
	assert.Equal(t, []string{"and", "changes", "heat", "storms"}, fb.Vocabulary.NonTargetExamples)

	req, ok := mock.CallFor(PurposeFeedback)
	require.True(t, ok)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "해당 학년 기준 어휘: 2개 (33.3%)")
	assert.Contains(t, msg, "기준 외 어휘 예시: and, changes, heat, storms")
	assert.Contains(t, msg, "Teacher summary (6 words)")
	for _, c := range Criteria {
		assert.Contains(t, msg, string(c.ID))
	}
}

func TestFeedback_ExamplesCappedInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"criteria": []any{}, "overall": "", "revised_summary": ""}))
	svc := newService(t, mock)

	_, err := svc.Feedback(context.Background(), FeedbackInput{
		Passage:        passage,
		TeacherSummary: "alpha bravo charlie delta echo foxtrot golf hotel",
		Grade:          grade.Tier3,
	})
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "기준 외 어휘 예시: alpha, bravo, charlie, delta, echo\n")
}

func TestFeedback_EmptyInputs(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newService(t, mock)

	_, err := svc.Feedback(context.Background(), FeedbackInput{Passage: passage, Grade: grade.Tier1})
	assert.ErrorIs(t, err, ErrEmptySummary)

	_, err = svc.Feedback(context.Background(), FeedbackInput{TeacherSummary: "something", Grade: grade.Tier1})
	assert.ErrorIs(t, err, ErrEmptyPassage)
	assert.Equal(t, 0, mock.CallCount())
}

func TestTranslateKeywords(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"glosses": []map[string]string{
			{"word": "Ocean", "meaning": "바다"},
			{"word": "heat", "meaning": " 열 "},
			{"word": "storm", "meaning": "폭풍"},
			{"word": "weather", "meaning": ""},
		},
	}))
	svc := newService(t, mock)

	got, err := svc.TranslateKeywords(context.Background(), []string{"ocean", "heat", "weather"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ocean": "바다", "heat": "열"}, got)

	req, _ := mock.CallFor(PurposeGloss)
	assert.Contains(t, req.Messages[0].Content, "- weather")
}

func TestTranslateKeywords_NoWords(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newService(t, mock)

	got, err := svc.TranslateKeywords(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, mock.CallCount())
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords("  "))
	assert.Equal(t, 3, CountWords("one  two\nthree"))
	assert.False(t, WithinTarget(14))
	assert.True(t, WithinTarget(15))
	assert.True(t, WithinTarget(20))
	assert.False(t, WithinTarget(21))
}
