package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

// Mascot is the face shown above the home menu. It reflects how the
// assistant is doing.
type Mascot int

const (
	MascotIdle        Mascot = iota
	MascotCelebrating        // an analysis in the last day
	MascotAlert              // no LLM, or a word list is missing
)

var mascots = map[Mascot]struct {
	art string
	fg  color.Color
}{
	MascotIdle: {fg: theme.Primary, art: `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ abc │
└─────┘`},
	MascotCelebrating: {fg: theme.ArcadeYellow, art: `┌─────┐
│ ★ ★ │
│  ▿  │
│ abc │
└─╥═╥─┘
  ╚═╝`},
	MascotAlert: {fg: theme.Accent, art: `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ abc │
└─────┘`},
}

// Render returns the colored art. Unknown values draw the idle face.
func (m Mascot) Render() string {
	v, ok := mascots[m]
	if !ok {
		v = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(v.fg).Render(v.art)
}
