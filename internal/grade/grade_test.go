package grade

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Grade
	}{
		{"tier1", Tier1},
		{"TIER2", Tier2},
		{"3", Tier3},
		{"고1", Tier1},
		{" 고3 ", Tier3},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("middle"); err == nil {
		t.Error("expected error for unknown grade")
	}
}

func TestVocabularyEra(t *testing.T) {
	tests := []struct {
		g      Grade
		want   Era
		wantOK bool
	}{
		{Tier1, EraB, true},
		{Tier2, EraA, true},
		{Tier3, EraA, true},
		{Unknown, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.g.VocabularyEra()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.VocabularyEra() = (%q, %v), want (%q, %v)", tt.g, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseTrack(t *testing.T) {
	tr, err := ParseTrack("전문교과")
	if err != nil || tr != Advanced {
		t.Fatalf("ParseTrack(전문교과) = (%v, %v)", tr, err)
	}
	tr, err = ParseTrack("")
	if err != nil || tr != NoTrack {
		t.Fatalf("ParseTrack(\"\") = (%v, %v)", tr, err)
	}
	if _, err := ParseTrack("honors"); err == nil {
		t.Fatal("expected error for unknown track")
	}
}

func TestRequiresTrack(t *testing.T) {
	if Tier1.RequiresTrack() {
		t.Error("tier1 should not require a track")
	}
	if !Tier2.RequiresTrack() || !Tier3.RequiresTrack() {
		t.Error("tier2 and tier3 require a track")
	}
}
