package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/precis/internal/router"
)

func TestEnterCloses(t *testing.T) {
	p := New("New Passage", "LLM API 키를 설정하세요.")
	assert.Contains(t, p.View(80, 20), "LLM API 키를 설정하세요.")

	_, cmd := p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)

	_, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
