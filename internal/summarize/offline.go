package summarize

import (
	"fmt"

	"github.com/abhisek/precis/internal/llm"
)

// offlineSummary is exactly MinWords long.
const offlineSummary = "This is an offline placeholder summary generated without a language model for testing the workflow."

// OfflineProvider answers every request with fixed, schema-valid output. It
// backs the "mock" provider so the workflow can be demonstrated without an
// API key. Keywords get no glosses.
func OfflineProvider() *llm.MockProvider {
	p := llm.NewMockProvider()
	p.Fallback = offlineResponse
	return p
}

func offlineResponse(req llm.Request) llm.MockResponse {
	if req.Schema == nil {
		return llm.MockJSON(offlineSummary)
	}
	switch req.Schema.Name {
	case SummarySchema.Name:
		return llm.MockJSON(map[string]any{"summary": offlineSummary})
	case FeedbackSchema.Name:
		criteria := make([]map[string]any, len(Criteria))
		for i, c := range Criteria {
			criteria[i] = map[string]any{
				"id":         string(c.ID),
				"score":      3,
				"comment":    "오프라인 모드입니다. 실제 평가가 아닙니다.",
				"suggestion": "",
			}
		}
		return llm.MockJSON(map[string]any{
			"criteria":        criteria,
			"overall":         "오프라인 모드에서 만든 예시 피드백입니다. API 키를 설정하면 실제 피드백을 받을 수 있습니다.",
			"revised_summary": offlineSummary,
		})
	case GlossSchema.Name:
		return llm.MockJSON(map[string]any{"glosses": []any{}})
	}
	return llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: fmt.Errorf("no offline response for schema %q", req.Schema.Name)}}
}
