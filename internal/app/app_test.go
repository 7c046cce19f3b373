package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/router"
	"github.com/abhisek/precis/internal/screen"
	"github.com/abhisek/precis/internal/ui/layout"
)

type stubScreen struct {
	title     string
	intercept bool
	got       []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string  { return "body of " + s.title }
func (s *stubScreen) Title() string         { return s.title }
func (s *stubScreen) InterceptsBack() bool  { return s.intercept }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "F1", Description: "Custom"}}
}

var escKey = tea.KeyPressMsg{Code: tea.KeyEscape}

func model(screens ...screen.Screen) AppModel {
	r := router.New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return AppModel{router: r, status: "openai · gpt-4o-mini"}
}

func TestEscPopsByDefault(t *testing.T) {
	top := &stubScreen{title: "History"}
	m := model(&stubScreen{title: "Home"}, top)

	_, cmd := m.Update(escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
	assert.Empty(t, top.got)
}

func TestEscForwardedWhenIntercepted(t *testing.T) {
	top := &stubScreen{title: "Write Summary", intercept: true}
	m := model(&stubScreen{title: "Home"}, top)

	_, cmd := m.Update(escKey)
	assert.Nil(t, cmd)
	require.Len(t, top.got, 1)
	assert.Equal(t, escKey, top.got[0])
}

func TestEscAtRootIsNoop(t *testing.T) {
	home := &stubScreen{title: "Home"}
	m := model(home)

	_, cmd := m.Update(escKey)
	assert.Nil(t, cmd)
	assert.Empty(t, home.got)
}

func TestCtrlCQuits(t *testing.T) {
	m := model(&stubScreen{title: "Home", intercept: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewFramesActiveScreen(t *testing.T) {
	m := model(&stubScreen{title: "Home"}, &stubScreen{title: "Curriculum"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	content := updated.(AppModel).View().Content
	assert.Contains(t, content, "Curriculum")
	assert.Contains(t, content, "body of Curriculum")
	assert.Contains(t, content, "openai")
	assert.Contains(t, content, "Custom")
}

func TestSkipWelcomeStartsAtHome(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	assert.Equal(t, "Home", m.router.Active().Title())

	m = newAppModel(Options{})
	assert.Empty(t, m.router.Active().Title(), "welcome splash has no title")
}
