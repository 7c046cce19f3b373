package curriculum

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/grade"
)

func TestKey(t *testing.T) {
	tests := []struct {
		g    grade.Grade
		t    grade.Track
		want string
	}{
		{grade.Tier1, grade.NoTrack, "고1"},
		{grade.Tier1, grade.Advanced, "고1"},
		{grade.Tier2, grade.General, "고2_일반선택+진로선택"},
		{grade.Tier3, grade.Advanced, "고3_전문교과"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.g, tt.t))
	}
}

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)
	require.Len(t, c.All(), 5)

	d, err := c.Resolve(grade.Tier1, grade.NoTrack)
	require.NoError(t, err)
	assert.Equal(t, "고1", d.Key)
	assert.Equal(t, grade.EraB, d.VocabularyEra)
	rubric := d.Rubric()
	require.Len(t, rubric, 5)
	assert.Equal(t, "A", rubric[0].Level)
	assert.Equal(t, "E", rubric[4].Level)
	assert.Nil(t, d.Standards())

	d, err = c.Resolve(grade.Tier3, grade.Advanced)
	require.NoError(t, err)
	assert.Equal(t, grade.EraA, d.VocabularyEra)
	standards := d.Standards()
	require.Len(t, standards, 3)
	assert.Equal(t, "심화영어작문II", standards[2].Subject)
	assert.Equal(t, "[12심영I04-02] 다양한 장르의 글을 읽고 요약하여 쓴다.", standards[0].Display())
	assert.True(t, strings.Contains(d.AssessmentTips, "대학 수준"))

	for _, g := range grade.All() {
		w, ok := c.Guideline(g)
		assert.True(t, ok, "guideline for %s", g)
		assert.Contains(t, w.LengthTarget, "15-20")
	}
}

func TestResolveTotal(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	grades := []grade.Grade{grade.Unknown, grade.Tier1, grade.Tier2, grade.Tier3}
	tracks := []grade.Track{grade.NoTrack, grade.General, grade.Advanced}
	for _, g := range grades {
		for _, tr := range tracks {
			d, err := c.Resolve(g, tr)
			if err != nil {
				assert.True(t, errors.Is(err, ErrNotFound), "%s/%s: %v", g, tr, err)
				assert.Nil(t, d)
				continue
			}
			assert.Equal(t, Key(g, tr), d.Key)
		}
	}

	_, err = c.Resolve(grade.Tier2, grade.NoTrack)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Resolve(grade.Unknown, grade.NoTrack)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	good := Descriptor{
		Key:           "고1",
		Grade:         grade.Tier1,
		Achievement:   LevelRubric{{Level: "A", Text: "x"}},
		VocabularyEra: grade.EraB,
	}

	tests := []struct {
		name    string
		entries []Descriptor
		wantErr string
	}{
		{"valid", []Descriptor{good}, ""},
		{"empty table", nil, "no curriculum entries"},
		{"duplicate key", []Descriptor{good, good}, "duplicate key"},
		{
			"key mismatch",
			[]Descriptor{{Key: "고2", Grade: grade.Tier2, Track: grade.General,
				Achievement: SubjectStandards{{Subject: "영어I"}}, VocabularyEra: grade.EraA}},
			"key does not match",
		},
		{
			"missing achievement",
			[]Descriptor{{Key: "고1", Grade: grade.Tier1, VocabularyEra: grade.EraB}},
			"missing achievement",
		},
		{
			"rubric on tier2",
			[]Descriptor{{Key: "고2_전문교과", Grade: grade.Tier2, Track: grade.Advanced,
				Achievement: LevelRubric{{Level: "A"}}, VocabularyEra: grade.EraA}},
			"level rubric is only used",
		},
		{
			"wrong era",
			[]Descriptor{{Key: "고1", Grade: grade.Tier1,
				Achievement: LevelRubric{{Level: "A"}}, VocabularyEra: grade.EraA}},
			"vocabulary era",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, nil)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRejectsBothVariants(t *testing.T) {
	data := []byte(`
entries:
  - key: 고1
    grade: tier1
    vocabulary_era: "2022"
    rubric: [{level: A, text: a}]
    standards: [{subject: s, code: c, text: t}]
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both rubric and standards")
}
