package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

// Coverage bands for basic-vocabulary ratios, as fractions of the unique
// words.
const (
	CoverageGood = 0.8
	CoverageFair = 0.6
)

// ProgressBar displays a horizontal bar filled to Percent, a fraction in
// [0, 1].
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	// Fill colors the filled part. Nil means theme.Secondary.
	Fill color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewRatioBar shows a vocabulary ratio in [0, 1], colored by CoverageColor.
func NewRatioBar(label string, ratio float64, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     ratio,
		ShowPercent: true,
		Width:       width,
		Fill:        CoverageColor(ratio),
	}
}

// CoverageColor bands a basic-vocabulary ratio in [0, 1]. Degraded
// analyses are colored by the caller.
func CoverageColor(ratio float64) color.Color {
	switch {
	case ratio >= CoverageGood:
		return theme.Success
	case ratio >= CoverageFair:
		return theme.Accent
	default:
		return theme.Error
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	pct := ""
	if p.ShowPercent {
		pct = fmt.Sprintf("  %.0f%%", p.Percent*100)
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(pct), 4)
	filled := min(max(int(float64(barWidth)*p.Percent+0.5), 0), barWidth)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)))
	if pct != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct))
	}
	return b.String()
}
