package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

// Choice is a labeled single-select field cycled with left and right.
// Selected is -1 until the user picks something unless a default is given.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewChoice creates a choice field. def is the initially selected index, or
// -1 for none.
func NewChoice(label string, options []string, def int) Choice {
	if def >= len(options) {
		def = -1
	}
	return Choice{
		Label:    label,
		Options:  options,
		Selected: def,
	}
}

// Update handles left/right and number keys while focused.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused || len(c.Options) == 0 {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if c.Selected <= 0 {
			c.Selected = len(c.Options) - 1
		} else {
			c.Selected--
		}
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
			}
		}
	}
	return c, nil
}

// Value returns the selected option, or "" when nothing is selected.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// Set selects the option equal to v. Unknown values clear the selection.
func (c *Choice) Set(v string) {
	c.Selected = -1
	for i, o := range c.Options {
		if o == v {
			c.Selected = i
			return
		}
	}
}

// View renders the label and every option on one line, the selected one
// highlighted.
func (c Choice) View() string {
	label := theme.Label.Render(c.Label)
	if c.Focused {
		label = theme.Selected.Render("▸ " + c.Label)
	} else {
		label = "  " + label
	}

	parts := make([]string, len(c.Options))
	for i, o := range c.Options {
		switch {
		case i == c.Selected && c.Focused:
			parts[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" " + o + " ")
		case i == c.Selected:
			parts[i] = theme.Value.Render("[" + o + "]")
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + o + " ")
		}
	}
	return label + "  " + strings.Join(parts, " ")
}
