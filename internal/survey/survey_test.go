package survey

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/store"
)

func completeResponse() *Response {
	r := NewResponse()
	r.Consent = true
	r.Teacher = TeacherInfo{Grade: "고2", SchoolType: "일반고", Experience: "5-10년"}
	r.Usage = ToolUsage{GradeLevel: "고2", SubjectType: "일반선택+진로선택", SourceType: "모의고사", CompletedSummary: true, ReceivedFeedback: true}
	return r
}

func TestHeaders(t *testing.T) {
	require.Len(t, Headers, 37)
	assert.Equal(t, "timestamp", Headers[0])
	assert.Equal(t, "vocab_analysis_completed", Headers[10])
	assert.Equal(t, "PU_1", Headers[11])
	assert.Equal(t, "AD_5", Headers[35])
	assert.Equal(t, "feedback_text", Headers[36])
}

func TestLikertLabel(t *testing.T) {
	assert.Equal(t, "전혀 그렇지 않다", LikertLabel(1))
	assert.Equal(t, "보통이다", LikertLabel(3))
	assert.Equal(t, "매우 그렇다", LikertLabel(5))
	assert.Equal(t, "", LikertLabel(0))
	assert.Equal(t, "", LikertLabel(6))
}

func TestValidate(t *testing.T) {
	r := completeResponse()
	require.NoError(t, r.Validate())

	r.Consent = false
	assert.ErrorIs(t, r.Validate(), ErrConsentRequired)

	r = completeResponse()
	r.Scores["SE_3"] = 0
	delete(r.Scores, "BI_5")
	r.Scores["XX_1"] = 3
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SE_3: score 0 out of range")
	assert.Contains(t, err.Error(), "BI_5: not answered")
	assert.Contains(t, err.Error(), "XX_1: unknown item")
}

func TestFinalizeAndParticipantID(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	r := completeResponse()
	r.Finalize(now)

	assert.Equal(t, now, r.Timestamp)
	assert.Regexp(t, regexp.MustCompile(`^P20250314_092653_\d{3}$`), r.ParticipantID)

	id := r.ParticipantID
	r.Finalize(now.Add(time.Hour))
	assert.Equal(t, id, r.ParticipantID, "finalize keeps an existing ID")
	assert.Equal(t, now, r.Timestamp)
}

func TestRow(t *testing.T) {
	r := completeResponse()
	r.Scores["PU_1"] = 5
	r.FeedbackText = "좋아요\n다음에도\r\n쓰겠습니다"
	r.Finalize(time.Date(2025, 3, 14, 9, 26, 53, 120000000, time.UTC))

	row := r.Row()
	require.Len(t, row, len(Headers))
	assert.Equal(t, "2025-03-14T09:26:53.120000", row[0])
	assert.Equal(t, r.ParticipantID, row[1])
	assert.Equal(t, "일반고", row[3])
	assert.Equal(t, true, row[8])
	assert.Equal(t, false, row[10])
	assert.Equal(t, 5, row[11])
	assert.Equal(t, 3, row[12])
	assert.Equal(t, "좋아요 다음에도 쓰겠습니다", row[36])

	rec := r.Record()
	assert.Equal(t, "TRUE", rec["completed_summary"])
	assert.Equal(t, "FALSE", rec["vocab_analysis_completed"])
	assert.Equal(t, "5", rec["PU_1"])
}

func TestCategoryAverages(t *testing.T) {
	r := NewResponse()
	for i := 1; i <= ItemsPerCategory; i++ {
		r.Scores[Categories[0].ItemKey(i)] = i
	}
	avg := r.CategoryAverages()
	assert.Equal(t, 3.0, avg["PU"])
	assert.Equal(t, 3.0, avg["AD"])
	assert.Len(t, avg, 5)
}

func TestSummarize(t *testing.T) {
	records := []map[string]string{
		{"timestamp": "t1", "school_type": "일반고", "tool_grade_level": "고1", "PU_1": "5", "PU_2": "4"},
		{"timestamp": "t2", "school_type": "특목고", "tool_grade_level": "고1", "PU_1": "3", "PU_2": "n/a"},
		{"timestamp": "t3", "school_type": "", "tool_grade_level": "고3", "PU_1": "2", "SE_1": "4"},
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, "t3", s.Latest)
	assert.Equal(t, map[string]int{"일반고": 1, "특목고": 1, "기타": 1}, s.SchoolTypes)
	assert.Equal(t, map[string]int{"고1": 2, "고3": 1}, s.GradeLevels)
	assert.Equal(t, 3.5, s.Averages["PU"])
	assert.Equal(t, 4.0, s.Averages["SE"])
	assert.Equal(t, 0.0, s.Averages["BI"])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.Latest)
	assert.Len(t, s.Averages, 5)
}

func TestSummarize_Rounds(t *testing.T) {
	s := Summarize([]map[string]string{{"BI_1": "4"}, {"BI_1": "4"}, {"BI_1": "5"}})
	assert.Equal(t, 4.33, s.Averages["BI"])
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLocalRecorder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	local := NewLocalRecorder(openStore(t).SurveyRepo())

	r := completeResponse()
	assert.Error(t, local.Record(ctx, r), "unfinalized responses are rejected")

	r.Finalize(time.Now())
	require.NoError(t, local.Record(ctx, r))

	recs, err := local.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, r.ParticipantID, recs[0]["participant_id"])

	stats := Summarize(recs)
	assert.Equal(t, 3.0, stats.Averages["PU"])
}

type fakeRecorder struct {
	got []*Response
	err error
}

func (f *fakeRecorder) Record(_ context.Context, r *Response) error {
	f.got = append(f.got, r)
	return f.err
}

func TestTee(t *testing.T) {
	r := completeResponse()
	r.Finalize(time.Now())

	primary := &fakeRecorder{err: errors.New("quota exceeded")}
	mirror := &fakeRecorder{}
	var seen []string
	tee := &Tee{
		Primary:     primary,
		PrimaryName: "sheets",
		Mirror:      mirror,
		Observe:     func(dest string, err error) { seen = append(seen, dest) },
	}

	err := tee.Record(context.Background(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheets")
	assert.Len(t, mirror.got, 1, "mirror still records when the primary fails")
	assert.Equal(t, []string{"sheets", "local"}, seen)

	tee.Primary = &fakeRecorder{}
	tee.Mirror = &fakeRecorder{err: errors.New("disk full")}
	assert.NoError(t, tee.Record(context.Background(), r), "mirror failures are not returned")
}

func TestTee_RetryKeepsOneLocalRow(t *testing.T) {
	ctx := context.Background()
	local := NewLocalRecorder(openStore(t).SurveyRepo())

	r := completeResponse()
	r.Finalize(time.Now())

	primary := &fakeRecorder{err: errors.New("quota exceeded")}
	var mirrorErrs []error
	tee := &Tee{
		Primary:     primary,
		PrimaryName: "sheets",
		Mirror:      local,
		Observe: func(dest string, err error) {
			if dest == "local" {
				mirrorErrs = append(mirrorErrs, err)
			}
		},
	}

	require.Error(t, tee.Record(ctx, r))
	require.Error(t, tee.Record(ctx, r))
	primary.err = nil
	require.NoError(t, tee.Record(ctx, r))

	assert.Equal(t, []error{nil, nil, nil}, mirrorErrs)
	recs, err := local.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, r.ParticipantID, recs[0]["participant_id"])
}
