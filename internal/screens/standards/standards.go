package standards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/grade"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/ui/layout"
	"github.com/abhisek/precis/internal/ui/theme"
)

type rowKind int

const (
	rowGradeHeader rowKind = iota
	rowDescriptor
)

type row struct {
	kind  rowKind
	grade grade.Grade
	desc  *curriculum.Descriptor
}

// BrowserScreen lists the curriculum descriptors grouped by grade.
type BrowserScreen struct {
	catalog      *curriculum.Catalog
	rows         []row
	cursor       int
	scrollOffset int
}

var (
	_ screen.Screen          = (*BrowserScreen)(nil)
	_ screen.KeyHintProvider = (*BrowserScreen)(nil)
)

// New creates a BrowserScreen over catalog.
func New(catalog *curriculum.Catalog) *BrowserScreen {
	s := &BrowserScreen{catalog: catalog}

	byGrade := map[grade.Grade][]*curriculum.Descriptor{}
	for _, d := range catalog.All() {
		byGrade[d.Grade] = append(byGrade[d.Grade], d)
	}
	for _, g := range grade.All() {
		descs := byGrade[g]
		if len(descs) == 0 {
			continue
		}
		s.rows = append(s.rows, row{kind: rowGradeHeader, grade: g})
		for _, d := range descs {
			s.rows = append(s.rows, row{kind: rowDescriptor, grade: g, desc: d})
		}
	}

	for i, r := range s.rows {
		if r.kind == rowDescriptor {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *BrowserScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowserScreen) Title() string {
	return "Curriculum"
}

func (s *BrowserScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Grade"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpGrade(1)
		case "shift+tab":
			s.jumpGrade(-1)
		case "enter":
			return s, s.open()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Selected returns the descriptor under the cursor.
func (s *BrowserScreen) Selected() *curriculum.Descriptor {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].desc
}

// moveCursor moves the cursor by delta, skipping grade headers.
func (s *BrowserScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowDescriptor {
			s.cursor = next
			return
		}
	}
}

// jumpGrade moves to the first descriptor of the next or previous grade.
func (s *BrowserScreen) jumpGrade(delta int) {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].grade
	target := grade.Unknown
	for i := s.cursor + delta; i >= 0 && i < len(s.rows); i += delta {
		if s.rows[i].grade != current {
			target = s.rows[i].grade
			break
		}
	}
	if target == grade.Unknown {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowDescriptor && r.grade == target {
			s.cursor = i
			return
		}
	}
}

func (s *BrowserScreen) open() tea.Cmd {
	d := s.Selected()
	if d == nil {
		return nil
	}
	var guide *curriculum.WritingGuideline
	if g, ok := s.catalog.Guideline(d.Grade); ok {
		guide = &g
	}
	detail := newDetail(d, guide)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *BrowserScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No curriculum entries loaded.")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowGradeHeader:
			lines = append(lines, renderGradeHeader(r.grade, width))
		case rowDescriptor:
			lines = append(lines, renderDescriptorRow(r.desc, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor and its grade header visible.
func (s *BrowserScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowGradeHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func renderGradeHeader(g grade.Grade, width int) string {
	label := g.Label()
	if era, ok := g.VocabularyEra(); ok {
		label += "  ·  " + era.EditionLabel()
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(label)
}

func renderDescriptorRow(d *curriculum.Descriptor, selected bool, width int) string {
	track := d.Track.Label()
	if track == "" {
		track = "공통"
	}
	subjects := strings.Join(d.Subjects, ", ")

	nameWidth := max(width-36, 10)
	if lipgloss.Width(subjects) > nameWidth {
		subjects = truncate(subjects, nameWidth)
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	cursor := "  "
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dimStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-14s", track)),
		nameStyle.Render(subjects),
		dimStyle.Render(d.Edition+" "+d.Year),
	)
}

func truncate(s string, w int) string {
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
