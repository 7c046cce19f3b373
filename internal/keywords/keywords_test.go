package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExample(t *testing.T) {
	got := Extract("The cat sat on the mat. The cat was happy.", 3)
	assert.Equal(t, []string{"cat", "sat", "mat"}, got)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		topN int
		want []string
	}{
		{"empty text", "", 5, []string{}},
		{"zero topN", "river river boat", 0, []string{}},
		{"negative topN", "river river boat", -1, []string{}},
		{"only stopwords", "the and of with", 5, []string{}},
		{"short tokens dropped", "ox ox ox elk", 5, []string{"elk"}},
		{"case folded", "River river RIVER boat", 2, []string{"river", "boat"}},
		{"fewer than topN", "quiet lake", 10, []string{"quiet", "lake"}},
		{
			"ties by first occurrence",
			"delta alpha charlie alpha bravo delta",
			4,
			[]string{"delta", "alpha", "charlie", "bravo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text, tt.topN))
		})
	}
}

func TestExtractProperties(t *testing.T) {
	text := `Scientists studying climate have found that ocean temperatures
	rise faster than expected. Ocean currents carry heat, and the heat changes
	weather patterns. Weather in coastal regions is especially sensitive.`

	got := Extract(text, 5)
	assert.LessOrEqual(t, len(got), 5)
	for _, w := range got {
		assert.False(t, IsStopword(w), "%q is a stopword", w)
		assert.GreaterOrEqual(t, len(w), MinLength)
	}
	assert.Equal(t, []string{"ocean", "heat", "weather", "scientists", "studying"}, got)
}

func TestStopwords(t *testing.T) {
	words := Stopwords()
	assert.Greater(t, len(words), 150)
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("whomever"))
	assert.False(t, IsStopword("river"))
}
