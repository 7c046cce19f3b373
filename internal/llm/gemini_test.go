package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall": map[string]any{"type": "string", "description": "종합 의견"},
			"criteria": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":       map[string]any{"type": "string"},
						"assessment": map[string]any{"type": "string", "enum": []any{"우수", "보통", "미흡"}},
						"score":      map[string]any{"type": "integer"},
					},
					"required": []any{"name", "assessment"},
				},
			},
		},
		"required":             []any{"overall", "criteria"},
		"additionalProperties": false,
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 2 || len(schema.Required) != 2 {
		t.Fatalf("unexpected top-level schema: %+v", schema)
	}
	if schema.Properties["overall"].Description != "종합 의견" {
		t.Errorf("description not carried over")
	}
	criteria := schema.Properties["criteria"]
	if criteria.Type != genai.TypeArray || criteria.Items == nil {
		t.Fatalf("expected ARRAY with items, got %+v", criteria)
	}
	item := criteria.Items
	if item.Properties["score"].Type != genai.TypeInteger {
		t.Errorf("expected INTEGER for score, got %s", item.Properties["score"].Type)
	}
	if len(item.Properties["assessment"].Enum) != 3 {
		t.Errorf("expected 3 enum values, got %d", len(item.Properties["assessment"].Enum))
	}
}

func TestBuildGeminiSchemaBoundsAndOrder(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestion": map[string]any{"type": "string"},
			"comment":    map[string]any{"type": "string"},
			"score":      map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"id":         map[string]any{"type": "string"},
			"extra":      map[string]any{"type": "number"},
		},
		"required": []any{"id", "score", "comment", "suggestion"},
	}

	schema := buildGeminiSchema(def)

	want := []string{"id", "score", "comment", "suggestion", "extra"}
	if len(schema.PropertyOrdering) != len(want) {
		t.Fatalf("ordering = %v, want %v", schema.PropertyOrdering, want)
	}
	for i := range want {
		if schema.PropertyOrdering[i] != want[i] {
			t.Fatalf("ordering = %v, want %v", schema.PropertyOrdering, want)
		}
	}

	score := schema.Properties["score"]
	if score.Minimum == nil || *score.Minimum != 1 || score.Maximum == nil || *score.Maximum != 5 {
		t.Errorf("score bounds not carried over: %+v", score)
	}
	if schema.Properties["comment"].Minimum != nil {
		t.Error("unexpected minimum on string property")
	}
}

func TestGeminiBlocked(t *testing.T) {
	tests := []struct {
		name    string
		result  *genai.GenerateContentResponse
		blocked bool
	}{
		{
			name:   "normal stop",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}}},
		},
		{
			name:    "safety stop",
			result:  &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
			blocked: true,
		},
		{
			name:    "no candidates",
			result:  &genai.GenerateContentResponse{},
			blocked: true,
		},
		{
			name: "prompt blocked",
			result: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			},
			blocked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := geminiBlocked(tt.result)
			if !tt.blocked {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if Classify(err) != OutcomeInvalid {
				t.Errorf("Classify(%v) = %s, want %s", err, Classify(err), OutcomeInvalid)
			}
		})
	}
}

func TestGeminiStopReason(t *testing.T) {
	truncated := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}}}
	if got := geminiStopReason(truncated); got != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", got)
	}
	if got := geminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Errorf("stop reason = %q, want end", got)
	}
}
