package summarize

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/llm"
)

func TestOfflineProviderRunsWholeWorkflow(t *testing.T) {
	svc := newService(t, OfflineProvider())
	ctx := context.Background()

	sum, err := svc.Summarize(ctx, SummaryInput{Passage: passage, Grade: grade.Tier1})
	require.NoError(t, err)
	assert.True(t, sum.WithinTarget)

	fb, err := svc.Feedback(ctx, FeedbackInput{Passage: passage, TeacherSummary: sum.Text, Grade: grade.Tier1})
	require.NoError(t, err)
	assert.Len(t, fb.Criteria, len(Criteria))
	assert.Equal(t, offlineSummary, fb.Revised)

	glosses, err := svc.TranslateKeywords(ctx, []string{"ocean"})
	require.NoError(t, err)
	assert.Empty(t, glosses)
}

func TestOfflineResponsesMatchSchemas(t *testing.T) {
	for _, s := range []*llm.Schema{SummarySchema, FeedbackSchema, GlossSchema} {
		resp := offlineResponse(llm.Request{Schema: s})
		require.NoError(t, resp.Err, s.Name)
		assert.True(t, json.Valid(resp.Content), s.Name)
	}
	assert.Error(t, offlineResponse(llm.Request{Schema: &llm.Schema{Name: "other"}}).Err)
}
