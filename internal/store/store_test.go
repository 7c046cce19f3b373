package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory(t.Name())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precis.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{Purpose: "p"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events after reopen, want 1", len(events))
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= last {
			t.Fatalf("sequence not increasing: %d after %d", n, last)
		}
		last = n
	}
}

func TestSequenceSeededPastExistingEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precis.db")
	ctx := context.Background()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for range 3 {
		if err := s.EventRepo().AppendAnalysis(ctx, AnalysisEventData{Grade: "tier1"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := s.DB().Exec(`DELETE FROM global_sequence`); err != nil {
		t.Fatalf("drop counter: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	n, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if n != 4 {
		t.Fatalf("next sequence = %d, want 4", n)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "reference-summary", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"summary":"x"}`},
		{Provider: "openai", Model: "gpt-4o", Purpose: "summary-feedback", InputTokens: 200, OutputTokens: 80, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "reference-summary", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].Model != "gpt-4o-mini" || got[0].Success || got[0].ErrorMessage != "boom" {
		t.Errorf("newest event mismatch: %+v", got[0])
	}
	if time.Since(got[0].Timestamp) > time.Minute {
		t.Errorf("unexpected timestamp %v", got[0].Timestamp)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "reference-summary", Limit: 1})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Model != "gpt-4o-mini" {
		t.Errorf("filtered query = %+v", filtered)
	}

	first := got[2]
	one, err := repo.GetLLMEvent(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ResponseBody != `{"summary":"x"}` || one.RequestBody != "[user]\nhi" {
		t.Errorf("get mismatch: %+v", one)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = (%v, %v), want (nil, nil)", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	ref := byPurpose[0]
	if ref.Purpose != "reference-summary" || ref.Calls != 2 || ref.InputTokens != 150 || ref.AvgLatencyMs != 200 {
		t.Errorf("reference-summary usage = %+v", ref)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gpt-4o" || byModel[0].OutputTokens != 100 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestAnalyses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := AnalysisEventData{
		Grade: "tier2", Track: "general", SourceType: "모의고사",
		PassageWords: 180, SummaryWords: 18, TotalUniqueWords: 15, TargetWords: 12,
		TargetRatio: 0.8, EraARatio: 0.8, EraBRatio: 0.6, Keywords: []string{"ocean", "heat"},
	}
	if err := repo.AppendAnalysis(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAnalysis(ctx, AnalysisEventData{Grade: "tier1", Degraded: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.QueryAnalyses(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d analyses, want 2", len(got))
	}
	if !got[0].Degraded || got[0].Keywords != nil {
		t.Errorf("newest analysis mismatch: %+v", got[0])
	}
	old := got[1]
	if old.TargetRatio != 0.8 || old.SourceType != "모의고사" || len(old.Keywords) != 2 {
		t.Errorf("older analysis mismatch: %+v", old)
	}

	after, err := repo.QueryAnalyses(ctx, QueryOpts{After: old.Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 {
		t.Errorf("got %d analyses after %d, want 1", len(after), old.Sequence)
	}
}

func TestSurveys(t *testing.T) {
	s := openTestStore(t)
	repo := s.SurveyRepo()
	ctx := context.Background()

	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rec := SurveyRecord{
		ParticipantID: "P20250314_093000_001",
		Timestamp:     ts,
		Values:        map[string]string{"학교급": "일반고", "PU_1": "5"},
	}
	if err := repo.SaveSurvey(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	rec.Values = map[string]string{"학교급": "일반고", "PU_1": "4"}
	if err := repo.SaveSurvey(ctx, rec); err != nil {
		t.Fatalf("save again: %v", err)
	}
	if err := repo.SaveSurvey(ctx, SurveyRecord{}); err == nil {
		t.Error("expected missing participant ID to fail")
	}

	got, err := repo.ListSurveys(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d surveys, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(ts) || got[0].Values["PU_1"] != "4" {
		t.Errorf("survey mismatch: %+v", got[0])
	}
}
