package summarize

import "github.com/abhisek/precis/internal/llm"

// SummarySchema defines the JSON schema for reference summary generation.
var SummarySchema = &llm.Schema{
	Name:        "reference-summary",
	Description: "A one-sentence English reference summary of the passage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "The summary in English, 15-20 words, complete sentence(s)",
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for summary feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "summary-feedback",
	Description: "Criterion-by-criterion review of a teacher-written summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"criteria": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "string",
							"enum": criterionEnum(),
						},
						"score": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "1 (poor) to 5 (excellent)",
						},
						"comment": map[string]any{
							"type":        "string",
							"description": "Specific evaluation in Korean, 1-3 sentences",
						},
						"suggestion": map[string]any{
							"type":        "string",
							"description": "Concrete improvement in Korean, or empty if none is needed",
						},
					},
					"required":             []any{"id", "score", "comment", "suggestion"},
					"additionalProperties": false,
				},
			},
			"overall": map[string]any{
				"type":        "string",
				"description": "Overall assessment and practical advice in Korean, 2-4 sentences",
			},
			"revised_summary": map[string]any{
				"type":        "string",
				"description": "An improved English version of the teacher's summary, 15-20 words",
			},
		},
		"required":             []any{"criteria", "overall", "revised_summary"},
		"additionalProperties": false,
	},
}

// GlossSchema defines the JSON schema for keyword translation.
var GlossSchema = &llm.Schema{
	Name:        "keyword-gloss",
	Description: "Korean meanings for English keywords",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"glosses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":    map[string]any{"type": "string", "description": "The English word as given"},
						"meaning": map[string]any{"type": "string", "description": "The single most fitting Korean meaning"},
					},
					"required":             []any{"word", "meaning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"glosses"},
		"additionalProperties": false,
	},
}

func criterionEnum() []any {
	out := make([]any, len(Criteria))
	for i, c := range Criteria {
		out[i] = string(c.ID)
	}
	return out
}
