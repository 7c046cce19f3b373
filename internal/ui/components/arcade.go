package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the cabinet sections so
// their boxes line up. It leaves room for the frame border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ProseCard boxes running text left aligned under an optional title.
func ProseCard(title, content string, cw int) string {
	var head string
	if title != "" {
		head = theme.Keyword.Render(title) + "\n"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(head + content)
}

// ButtonState is how an ArcadeButton is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders a fixed-width bordered button in the home menu style.
func ArcadeButton(label string, state ButtonState, width int) string {
	st := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return st.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return st.Foreground(theme.TextDim).Render(label)
	}
	return st.Render(label)
}

// MenuButtonState maps a menu entry to the state its button is drawn in.
func MenuButtonState(m Menu, i int) ButtonState {
	switch {
	case m.Items[i].Disabled:
		return ButtonDisabled
	case i == m.Selected:
		return ButtonSelected
	}
	return ButtonIdle
}
