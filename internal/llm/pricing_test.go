package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
		in    float64
	}{
		{"gpt-4o", true, 2.5},
		{"openai/gpt-4o-mini", true, 0.15},
		{"claude-haiku-4-5-20251001", true, 1},
		{"mock", false, 0},
		{"vendor/unknown", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if (c != nil) != tt.found {
				t.Fatalf("LookupCost(%q) found = %v, want %v", tt.model, c != nil, tt.found)
			}
			if c != nil && c.InputPerMTok != tt.in {
				t.Errorf("InputPerMTok = %v, want %v", c.InputPerMTok, tt.in)
			}
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 2.5, OutputPerMTok: 10}
	got := c.Cost(1_000_000, 500_000)
	if math.Abs(got-7.5) > 1e-9 {
		t.Errorf("Cost = %v, want 7.5", got)
	}
}
