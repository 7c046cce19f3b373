package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/precis/internal/curriculum"
	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/screens/history"
	"github.com/abhisek/precis/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/precis/internal/screens/session"
	"github.com/abhisek/precis/internal/screens/standards"
	"github.com/abhisek/precis/internal/screens/wordlists"
	"github.com/abhisek/precis/internal/store"
	"github.com/abhisek/precis/internal/ui/components"
	"github.com/abhisek/precis/internal/vocab"
	"github.com/abhisek/precis/internal/workflow"
)

// Menu entries, in display order.
const (
	itemNewPassage = iota
	itemCurriculum
	itemVocabulary
	itemHistory
	itemExit
)

var menuLabels = []string{"NEW PASSAGE", "CURRICULUM", "WORD LISTS", "HISTORY", "EXIT"}

// Deps are what the home screen hands to the screens it opens. Runner is nil
// when no LLM provider is configured; Events is nil without a database.
type Deps struct {
	Runner     *workflow.Runner
	Curriculum *curriculum.Catalog
	Vocab      *vocab.Catalog
	Events     store.EventRepo

	// Provider names the configured LLM provider, for the stats bar.
	Provider string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	events     store.EventRepo
	analyses   int
	vocabWords int
	degraded   bool
	provider   string
	llmReady   bool
	mascot     Mascot
}

var (
	_ screen.Screen  = (*HomeScreen)(nil)
	_ screen.Resumer = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(d Deps) *HomeScreen {
	vc := d.Vocab
	if vc == nil {
		vc = vocab.NewCatalog(nil, nil)
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := make([]components.MenuItem, len(menuLabels))
	items[itemNewPassage] = components.MenuItem{Label: menuLabels[itemNewPassage], Action: push(func() screen.Screen {
		if d.Runner == nil {
			return placeholder.New("New Passage", "LLM API 키를 설정해야 요약문 피드백을 받을 수 있습니다.\nprecis --help 를 참고하세요.")
		}
		return sessionscreen.New(d.Runner)
	})}
	items[itemCurriculum] = components.MenuItem{
		Label:    menuLabels[itemCurriculum],
		Disabled: d.Curriculum == nil,
		Action:   push(func() screen.Screen { return standards.New(d.Curriculum) }),
	}
	items[itemVocabulary] = components.MenuItem{
		Label:  menuLabels[itemVocabulary],
		Action: push(func() screen.Screen { return wordlists.New(vc) }),
	}
	items[itemHistory] = components.MenuItem{
		Label:    menuLabels[itemHistory],
		Disabled: d.Events == nil,
		Action:   push(func() screen.Screen { return history.New(d.Events) }),
	}
	items[itemExit] = components.MenuItem{Label: menuLabels[itemExit], Action: func() tea.Cmd {
		return tea.Quit
	}}

	h := &HomeScreen{
		menu:       components.NewMenu(items),
		events:     d.Events,
		vocabWords: vc.Combined().Len(),
		degraded:   vc.Degraded(),
		provider:   d.Provider,
		llmReady:   d.Runner != nil,
	}
	h.refresh()
	return h
}

// refresh recounts analyses and picks the mascot.
func (h *HomeScreen) refresh() {
	var recent bool
	if h.events != nil {
		if list, err := h.events.QueryAnalyses(context.Background(), store.QueryOpts{}); err == nil {
			h.analyses = len(list)
			recent = len(list) > 0 && time.Since(list[0].Timestamp) < 24*time.Hour
		}
	}

	switch {
	case !h.llmReady || h.degraded:
		h.mascot = MascotAlert
	case recent:
		h.mascot = MascotCelebrating
	default:
		h.mascot = MascotIdle
	}
}

// Resume picks up analyses stored by a session that just closed.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	tiny := termHeight < 26

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.analyses, h.vocabWords, h.provider, cw, compact))
	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}

	sections = append(sections, renderMenu(h.menu, cw, tiny))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
