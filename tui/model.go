// Package tui provides the interactive batch front end: a multi-line query
// editor, an output directory field, and a live progress log fed by a
// single background worker.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkamau/versedeck/batch"
	"github.com/pkamau/versedeck/core"
	"github.com/pkamau/versedeck/core/output"
	"github.com/pkamau/versedeck/core/sections"
)

// Config wires the pipeline stages into the TUI.
type Config struct {
	Fetcher   core.Fetcher
	Parser    *sections.Parser
	Renderer  core.Renderer
	OutputDir string
}

type state int

const (
	stateEditing state = iota
	stateRunning
	stateDone
)

// Messages for async batch progress.
type progressMsg batch.Event
type batchDoneMsg batch.Summary

// Model is the bubbletea model for the batch front end.
type Model struct {
	cfg    Config
	styles *Styles

	queries  textarea.Model
	dirInput textinput.Model
	log      viewport.Model

	state    state
	focusDir bool
	lines    []string
	events   chan batch.Event
	done     chan batch.Summary

	width  int
	height int
}

// NewModel creates the initial model.
func NewModel(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "one song query per line, e.g. way maker sinach"
	ta.SetHeight(8)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "output directory"
	ti.SetValue(cfg.OutputDir)

	vp := viewport.New(80, 10)

	return Model{
		cfg:      cfg,
		styles:   DefaultStyles(),
		queries:  ta,
		dirInput: ti,
		log:      vp,
	}
}

// Run starts the TUI program.
func Run(cfg Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.queries.SetWidth(msg.Width - 6)
		m.dirInput.Width = msg.Width - 24
		m.log.Width = msg.Width - 6
		if h := msg.Height - m.queries.Height() - 10; h > 3 {
			m.log.Height = h
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.state == stateEditing {
				m.toggleFocus()
				return m, nil
			}
		case "ctrl+g":
			if m.state == stateEditing {
				return m.startBatch()
			}
		}

	case progressMsg:
		m.appendLine(formatEvent(m.styles, batch.Event(msg)))
		return m, m.waitForEvent()

	case batchDoneMsg:
		m.state = stateDone
		m.appendLine("")
		m.appendLine(m.styles.OkLine.Render(
			fmt.Sprintf("completed: %d succeeded, %d failed", msg.Succeeded, msg.Failed)))
		return m, nil
	}

	var cmds []tea.Cmd
	if m.state == stateEditing {
		var cmd tea.Cmd
		if m.focusDir {
			m.dirInput, cmd = m.dirInput.Update(msg)
		} else {
			m.queries, cmd = m.queries.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	var vpCmd tea.Cmd
	m.log, vpCmd = m.log.Update(msg)
	cmds = append(cmds, vpCmd)
	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("versedeck — lyrics presentation generator") + "\n")
	b.WriteString(m.styles.Label.Render("Queries (one per line)") + "\n")
	b.WriteString(m.styles.Box.Render(m.queries.View()) + "\n")
	b.WriteString(m.styles.Label.Render("Output dir: ") + m.dirInput.View() + "\n")
	b.WriteString(m.styles.Label.Render("Progress") + "\n")
	b.WriteString(m.styles.Box.Render(m.log.View()) + "\n")

	help := "tab: switch field • ctrl+g: generate • esc: quit"
	if m.state == stateRunning {
		help = "processing… • esc: quit"
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func (m *Model) toggleFocus() {
	m.focusDir = !m.focusDir
	if m.focusDir {
		m.queries.Blur()
		m.dirInput.Focus()
	} else {
		m.dirInput.Blur()
		m.queries.Focus()
	}
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

// startBatch spawns the single background worker and begins listening for
// its events. The worker runs the full list to completion; there is no
// cancellation once started.
func (m Model) startBatch() (tea.Model, tea.Cmd) {
	queries := splitQueries(m.queries.Value())
	if len(queries) == 0 {
		m.appendLine(m.styles.ErrLine.Render("enter at least one song query"))
		return m, nil
	}

	writer, err := output.New(strings.TrimSpace(m.dirInput.Value()))
	if err != nil {
		m.appendLine(m.styles.ErrLine.Render("error: " + err.Error()))
		return m, nil
	}

	m.state = stateRunning
	m.lines = nil
	m.events = make(chan batch.Event, 16)
	m.done = make(chan batch.Summary, 1)

	events, done := m.events, m.done
	runner := &batch.Runner{
		Fetcher:  m.cfg.Fetcher,
		Parser:   m.cfg.Parser,
		Renderer: m.cfg.Renderer,
		Writer:   writer,
		Progress: func(e batch.Event) { events <- e },
	}
	go func() {
		sum := runner.Run(context.Background(), queries)
		close(events)
		done <- sum
	}()

	return m, m.waitForEvent()
}

// waitForEvent returns a command that blocks for the next worker event,
// switching to the summary once the event channel is drained.
func (m Model) waitForEvent() tea.Cmd {
	events, done := m.events, m.done
	return func() tea.Msg {
		if e, ok := <-events; ok {
			return progressMsg(e)
		}
		return batchDoneMsg(<-done)
	}
}

func formatEvent(s *Styles, e batch.Event) string {
	prefix := fmt.Sprintf("[%d/%d] ", e.Index, e.Total)
	if e.Err != nil {
		return s.ErrLine.Render(prefix + e.Query + ": " + e.Err.Error())
	}
	return prefix + e.Message
}

func splitQueries(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
