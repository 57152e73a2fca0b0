package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg int

func testMenu() Menu {
	pick := func(n int) func() tea.Cmd {
		return func() tea.Cmd { return func() tea.Msg { return pickedMsg(n) } }
	}
	return NewMenu([]MenuItem{
		{Label: "first", Action: pick(0)},
		{Label: "second", Disabled: true},
		{Label: "third", Action: pick(2)},
	})
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := testMenu()
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg(2), cmd())
}

func TestMenuFirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "off", Disabled: true}, {Label: "on"}})
	assert.Equal(t, 1, m.Selected)
}

func TestMenuViewMarksSelection(t *testing.T) {
	view := testMenu().View()
	assert.Contains(t, view, "▸ first")
	assert.Contains(t, view, "third")
}

func TestProgressBarClamps(t *testing.T) {
	assert.Equal(t, 1.0, NewProgressBar("", 1.7, false, 20).Percent)
	assert.Equal(t, 0.0, NewProgressBar("", -1, false, 20).Percent)
}

func TestProgressBarView(t *testing.T) {
	view := NewProgressBar("Reading", 0.5, true, 30).View()
	assert.Contains(t, view, "Reading")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "█")
	assert.Contains(t, view, "░")
}

func TestMultiChoiceView(t *testing.T) {
	mc := MultiChoice{
		Options:      []string{"alpha", "beta", "gamma", "delta"},
		Selected:     1,
		CorrectIndex: 2,
	}
	view := mc.View()
	assert.Contains(t, view, "▸ 2)  beta")
	assert.Contains(t, view, "1)  alpha")
	assert.Equal(t, 4, strings.Count(view, "\n"))
}

func TestMultiChoiceNoSelection(t *testing.T) {
	mc := MultiChoice{Options: []string{"a", "b"}, Selected: -1}
	assert.NotContains(t, mc.View(), "▸")
}
