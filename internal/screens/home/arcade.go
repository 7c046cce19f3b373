package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/screens/welcome"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/ui/theme"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(welcome.BannerText(compact))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(analyses, words int, provider string, cw int, compact bool) string {
	analysisStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	wordStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	llmStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			analysisStyle.Render(fmt.Sprintf("★%d", analyses)),
			wordStyle.Render(fmt.Sprintf("◆%d", words)),
			providerText(provider, true, llmStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			analysisStyle.Render(fmt.Sprintf("★ %d ANALYSES", analyses)),
			wordStyle.Render(fmt.Sprintf("◆ %d WORDS", words)),
			providerText(provider, false, llmStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func providerText(provider string, compact bool, active, dim lipgloss.Style) string {
	if provider == "" {
		if compact {
			return dim.Render("⚡-")
		}
		return dim.Render("⚡ NO LLM")
	}
	if compact {
		return active.Render("⚡" + provider)
	}
	return active.Render("⚡ " + strings.ToUpper(provider))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu draws the menu as numbered buttons, or as plain lines when
// bordered buttons would not fit.
func renderMenu(m components.Menu, cw int, tiny bool) string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := fmt.Sprintf("%d  %s", i+1, item.Label)
		state := components.MenuButtonState(m, i)
		if !tiny {
			lines[i] = components.ArcadeButton(label, state, buttonWidth)
			continue
		}
		switch state {
		case components.ButtonSelected:
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		case components.ButtonDisabled:
			lines[i] = theme.Label.Render("   " + label)
		default:
			lines[i] = theme.Body.Render("   " + label)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to get summaries and feedback (see precis --help)")
}

func renderMascotBox(m Mascot, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.Render())
}
