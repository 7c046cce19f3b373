package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestShorten(t *testing.T) {
	assert.Equal(t, "openai", shorten("openai", 10))
	assert.Equal(t, "open…", shorten("openai · gpt-4o-mini", 5))
	assert.Equal(t, "", shorten("openai", 0))
	assert.LessOrEqual(t, lipgloss.Width(shorten("지문 요약 도우미", 7)), 7)
}

func TestHeaderShortensStatus(t *testing.T) {
	status := "openrouter · anthropic/claude-sonnet-4-20250514"

	wide := RenderHeader("Write Summary", status, 140)
	assert.Contains(t, wide, "Write Summary")
	assert.Contains(t, wide, status)

	compact := RenderHeader("Write Summary", status, 80)
	assert.Contains(t, compact, "Write Summary")
	assert.NotContains(t, compact, status)
	assert.Contains(t, compact, "…")
}

func TestFooterDropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Ctrl+T", Description: "Survey"},
		{Key: "Esc", Description: "Leave"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	wide := RenderFooter(hints, 140)
	assert.Contains(t, wide, "Quit")

	narrow := RenderFooter(hints, 40)
	assert.Contains(t, narrow, "Submit")
	assert.NotContains(t, narrow, "Quit")
}
