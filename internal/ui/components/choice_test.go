package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestChoice_Cycle(t *testing.T) {
	c := NewChoice("학년", []string{"고1", "고2", "고3"}, -1)
	c.Focused = true
	assert.Equal(t, "", c.Value())

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "고1", c.Value())

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, "고3", c.Value(), "left wraps to the last option")

	c, _ = c.Update(key('2'))
	assert.Equal(t, "고2", c.Value())

	c, _ = c.Update(key('9'))
	assert.Equal(t, "고2", c.Value(), "out of range digit is ignored")
}

func TestChoice_IgnoresKeysWhenBlurred(t *testing.T) {
	c := NewChoice("학년", []string{"고1", "고2"}, 0)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, "고1", c.Value())
}

func TestChoice_Set(t *testing.T) {
	c := NewChoice("경력", []string{"5년 미만", "5-10년"}, -1)
	c.Set("5-10년")
	assert.Equal(t, 1, c.Selected)
	c.Set("nope")
	assert.Equal(t, -1, c.Selected)
}

func TestNewChoice_DefaultOutOfRange(t *testing.T) {
	c := NewChoice("x", []string{"a"}, 4)
	assert.Equal(t, -1, c.Selected)
}
