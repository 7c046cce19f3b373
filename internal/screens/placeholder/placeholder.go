package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
)

// PlaceholderScreen opens in place of a screen that cannot run yet, such as
// the session without an LLM, and says what is missing.
type PlaceholderScreen struct {
	title   string
	message string
}

var (
	_ screen.Screen          = (*PlaceholderScreen)(nil)
	_ screen.KeyHintProvider = (*PlaceholderScreen)(nil)
)

func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

// Update closes the notice on Enter. Esc is handled by the app.
func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⚠ " + p.title)
	body := theme.Body.Render(p.message)
	hint := theme.Hint.Render("Enter 또는 Esc 로 돌아가기")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + body + "\n\n" + hint)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
}
