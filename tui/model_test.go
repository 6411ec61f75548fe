package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamau/versedeck/batch"
)

func TestSplitQueries(t *testing.T) {
	got := splitQueries("way maker sinach\n\n  oceans hillsong  \n")
	assert.Equal(t, []string{"way maker sinach", "oceans hillsong"}, got)
	assert.Nil(t, splitQueries("  \n\n"))
}

func TestFormatEvent(t *testing.T) {
	s := DefaultStyles()

	ok := formatEvent(s, batch.Event{Index: 1, Total: 3, Query: "q", Message: "found: Q"})
	assert.Contains(t, ok, "[1/3]")
	assert.Contains(t, ok, "found: Q")

	bad := formatEvent(s, batch.Event{Index: 2, Total: 3, Query: "q", Err: errors.New("boom")})
	assert.Contains(t, bad, "boom")
}

func TestModelProgressUpdates(t *testing.T) {
	m := NewModel(Config{})
	m.events = make(chan batch.Event, 1)
	m.done = make(chan batch.Summary, 1)

	next, cmd := m.Update(progressMsg{Index: 1, Total: 1, Query: "q", Message: "processing: q"})
	require.NotNil(t, cmd)
	got := next.(Model)
	require.Len(t, got.lines, 1)
	assert.Contains(t, got.lines[0], "processing: q")

	next, cmd = got.Update(batchDoneMsg{Succeeded: 1})
	assert.Nil(t, cmd)
	got = next.(Model)
	assert.Equal(t, stateDone, got.state)
	assert.Contains(t, got.lines[len(got.lines)-1], "1 succeeded")
}

func TestModelQuitKeys(t *testing.T) {
	m := NewModel(Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
