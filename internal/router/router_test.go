package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/precis/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	setup := &stubScreen{title: "New passage"}
	r.Push(setup)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "New passage", r.Active().Title())
	assert.True(t, setup.initRan, "Init() runs on the pushed screen")
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Curriculum"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.Active().Title())
}

type resumingScreen struct {
	stubScreen
	resumed int
}

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopResumesScreenBelow(t *testing.T) {
	home := &resumingScreen{stubScreen: stubScreen{title: "Home"}}
	r := New(home)
	r.Push(&stubScreen{title: "New passage"})
	r.Pop()
	assert.Equal(t, 1, home.resumed)

	// Popping the root does not resume it.
	r.Pop()
	assert.Equal(t, 1, home.resumed)
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "Welcome"})

	home := &stubScreen{title: "Home"}
	r.Replace(home)

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Home", r.Active().Title())
	assert.True(t, home.initRan)
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "Home"})
	r.Push(&stubScreen{title: "Summary"})
	r.Replace(&stubScreen{title: "Survey"})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Survey", r.Active().Title())
}

func TestNavigationMessages(t *testing.T) {
	home := &stubScreen{title: "Home"}
	r := New(home)

	history := &stubScreen{title: "History"}
	r.Update(PushScreenMsg{Screen: history})
	assert.Equal(t, "History", r.Active().Title())
	assert.True(t, history.initRan)

	vocab := &stubScreen{title: "Vocabulary"}
	r.Update(ReplaceScreenMsg{Screen: vocab})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "Vocabulary", r.Active().Title())

	r.Update(PopScreenMsg{})
	assert.Equal(t, "Home", r.Active().Title())
	assert.Empty(t, home.got, "navigation messages are not forwarded")
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "Home"}
	setup := &stubScreen{title: "New passage"}
	r := New(home)
	r.Push(setup)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Len(t, setup.got, 1)
	assert.Empty(t, home.got)
	assert.Equal(t, "New passage", r.View(80, 24))
}
