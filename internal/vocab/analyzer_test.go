package vocab

import (
	"reflect"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/precis/internal/grade"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"The cat sat.", []string{"the", "cat", "sat"}},
		{"don't stop-me now2go", []string{"don", "t", "stop", "me", "now", "go"}},
		{"한국어 English 섞임", []string{"english"}},
		{"ABC", []string{"abc"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestAnalyzeExample(t *testing.T) {
	eraA := NewSet(grade.EraA, "happy", "mat")
	eraB := NewSet(grade.EraB, "cat")
	text := "The cat sat on the mat. The cat was happy."

	got := Analyze(text, eraA, eraA, eraB)

	// U = {the, cat, sat, on, mat, was, happy}
	want := Stats{
		TotalUniqueWords:  7,
		TargetWords:       2,
		NonTargetWords:    5,
		TargetRatio:       2.0 / 7.0,
		EraAWords:         2,
		EraARatio:         2.0 / 7.0,
		EraBWords:         1,
		EraBRatio:         1.0 / 7.0,
		NonTargetExamples: []string{"cat", "on", "sat", "the", "was"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeContentWords(t *testing.T) {
	eraA := NewSet(grade.EraA, "happy", "mat")
	eraB := NewSet(grade.EraB, "cat")

	got := Analyze("cat sat mat happy", eraA, eraA, eraB)
	if got.TargetWords != 2 || got.TargetRatio != 0.5 || got.NonTargetWords != 2 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if diff := cmp.Diff([]string{"cat", "sat"}, got.NonTargetExamples); diff != "" {
		t.Errorf("examples mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeDegraded(t *testing.T) {
	got := Analyze("alpha beta gamma", nil, nil, nil)
	if !got.Degraded {
		t.Error("expected degraded stats for empty target")
	}
	if got.TargetWords != 0 || got.NonTargetWords != 3 || got.TargetRatio != 0 {
		t.Errorf("unexpected stats: %+v", got)
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, got.NonTargetExamples); diff != "" {
		t.Errorf("examples mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	got := Analyze("123 ... 한국어", NewSet(grade.EraA, "a"), nil, nil)
	if got.TotalUniqueWords != 0 || got.TargetRatio != 0 || got.EraARatio != 0 {
		t.Errorf("expected zero stats, got %+v", got)
	}
	if len(got.NonTargetExamples) != 0 {
		t.Errorf("expected no examples, got %v", got.NonTargetExamples)
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	target := NewSet(grade.EraA, "the", "river", "boat", "quiet")
	texts := []string{
		"The river was quiet and the boat drifted slowly past the old mill.",
		"Alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron.",
		"",
		"a a a a",
	}

	for _, text := range texts {
		st := Analyze(text, target, target, nil)

		unique := map[string]bool{}
		for _, tok := range Tokenize(text) {
			unique[tok] = true
		}
		if st.TotalUniqueWords != len(unique) {
			t.Errorf("%q: total %d, want %d", text, st.TotalUniqueWords, len(unique))
		}
		if st.TargetWords+st.NonTargetWords != st.TotalUniqueWords {
			t.Errorf("%q: target+nonTarget != total", text)
		}
		if st.TotalUniqueWords > 0 {
			want := float64(st.TargetWords) / float64(st.TotalUniqueWords)
			if st.TargetRatio != want {
				t.Errorf("%q: ratio %v, want %v", text, st.TargetRatio, want)
			}
		} else if st.TargetRatio != 0 {
			t.Errorf("%q: ratio should be 0 for empty text", text)
		}
		if !sort.StringsAreSorted(st.NonTargetExamples) {
			t.Errorf("%q: examples not sorted: %v", text, st.NonTargetExamples)
		}
		if len(st.NonTargetExamples) != min(MaxNonTargetExamples, st.NonTargetWords) {
			t.Errorf("%q: %d examples for %d non-target words", text, len(st.NonTargetExamples), st.NonTargetWords)
		}

		again := Analyze(text, target, target, nil)
		if !reflect.DeepEqual(st, again) {
			t.Errorf("%q: Analyze is not deterministic", text)
		}
	}
}

func TestAnalyzeForGrade(t *testing.T) {
	c := NewCatalog(NewSet(grade.EraA, "happy", "mat"), NewSet(grade.EraB, "cat"))

	st := c.AnalyzeForGrade("cat sat mat happy", grade.Tier1)
	if st.TargetWords != 1 || st.EraAWords != 2 || st.EraBWords != 1 {
		t.Errorf("tier1 stats: %+v", st)
	}

	st = c.AnalyzeForGrade("cat sat mat happy", grade.Unknown)
	if st.TargetWords != 3 {
		t.Errorf("combined target words = %d, want 3", st.TargetWords)
	}
}
