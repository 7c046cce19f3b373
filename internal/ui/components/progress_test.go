package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/precis/internal/ui/theme"
)

func TestCoverageColor(t *testing.T) {
	assert.Equal(t, theme.Success, CoverageColor(0.95))
	assert.Equal(t, theme.Success, CoverageColor(CoverageGood))
	assert.Equal(t, theme.Accent, CoverageColor(0.7))
	assert.Equal(t, theme.Error, CoverageColor(0.1))
	assert.Equal(t, theme.Error, CoverageColor(0))
}

func TestProgressBarWidth(t *testing.T) {
	for _, pct := range []float64{0, 0.5, 1, 1.7, -0.2} {
		bar := NewProgressBar("vocab", pct, true, 40).View()
		assert.Equal(t, 40, lipgloss.Width(bar), "percent %v", pct)
	}
}

func TestRatioBarTakesFraction(t *testing.T) {
	bar := NewRatioBar("2022", 0.724, 40)
	assert.InDelta(t, 0.724, bar.Percent, 1e-9)
	assert.Equal(t, theme.Accent, bar.Fill)
	assert.Contains(t, bar.View(), "72%")

	half := NewRatioBar("x", 0.5, 30)
	assert.Contains(t, half.View(), "50%")
	assert.Equal(t, theme.Error, half.Fill)
}
