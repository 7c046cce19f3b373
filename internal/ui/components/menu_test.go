package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

type ranMsg int

func testMenu(disabled ...int) Menu {
	items := make([]MenuItem, 4)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('A' + i)), Action: func() tea.Cmd {
			return func() tea.Msg { return ranMsg(i) }
		}}
	}
	for _, d := range disabled {
		items[d].Disabled = true
	}
	return NewMenu(items)
}

func TestMenuStartsOnFirstEnabled(t *testing.T) {
	assert.Equal(t, 0, testMenu().Selected)
	assert.Equal(t, 2, testMenu(0, 1).Selected)
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := testMenu(1, 2)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	// Stays put at the end.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 0, m.Selected)
}

func TestMenuEnterAndDigits(t *testing.T) {
	m := testMenu(2)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, ranMsg(0), cmd())

	m, cmd = m.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.Equal(t, 3, m.Selected)
	assert.Equal(t, ranMsg(3), cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Nil(t, cmd, "disabled item")
}
