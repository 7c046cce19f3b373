package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func feedbackSchemaForTest() *Schema {
	return &Schema{
		Name:        "test-feedback",
		Description: "Scored feedback on a student summary",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overall": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"level":   map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D", "E"}},
				"comments": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"overall", "comments"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"overall":4,"level":"B","comments":["주제문이 명확합니다."]}`, false},
		{"optional omitted", `{"overall":3,"comments":[]}`, false},
		{"missing required", `{"overall":3}`, true},
		{"wrong type", `{"overall":"four","comments":[]}`, true},
		{"out of range", `{"overall":9,"comments":[]}`, true},
		{"bad enum", `{"overall":2,"level":"F","comments":[]}`, true},
		{"wrong item type", `{"overall":2,"comments":[1,2]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(feedbackSchemaForTest(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`"plain text"`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
