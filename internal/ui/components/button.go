package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

// Button is one entry of a horizontal action row. Hotkey, when set, names
// the shortcut that runs the same action from anywhere on the screen.
type Button struct {
	Label  string
	Hotkey string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// WithHotkey returns the button with a shortcut hint.
func (b Button) WithHotkey(key string) Button {
	b.Hotkey = key
	return b
}

// View renders the button.
func (b Button) View() string {
	label := "  " + b.Label + " "
	if b.Active {
		label = "  ▸ " + b.Label + " "
	}
	if b.Hotkey != "" {
		label += lipgloss.NewStyle().Faint(true).Render(b.Hotkey) + " "
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
