// Package tui implements the interactive palette preview.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/generate"
	"github.com/monkeypaint-cli/monkeypaint/style"
	"github.com/monkeypaint-cli/monkeypaint/util"
)

// state enumerates the preview's lifecycle phases.
type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

// resultMsg carries a finished (or failed) generation back into the program.
type resultMsg struct {
	result *generate.Result
	err    error
}

type model struct {
	options *generate.Options

	state   state
	spinner spinner.Model
	keymap  keymap
	help    help.Model
	width   int

	result    *generate.Result
	err       error
	confirmed bool
}

// Run previews generated palettes interactively, regenerating on demand, and
// publishes the accepted profile once the program exits.
func Run(options *generate.Options) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(color.HiPurple)

	width := 80
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = w
	}

	m := model{
		options: options,
		spinner: s,
		keymap:  newKeymap(),
		help:    help.New(),
		width:   width,
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	fm := final.(model)
	if fm.err != nil {
		return fm.err
	}

	// Publication happens after the program closes so stdout destinations do
	// not fight the renderer.
	if fm.confirmed && fm.result != nil {
		return generate.Publish(fm.result, os.Stdout)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.buildCmd())
}

// buildCmd runs the generation pipeline off the UI goroutine.
func (m model) buildCmd() tea.Cmd {
	options := m.options
	return func() tea.Msg {
		result, err := generate.Build(options)
		return resultMsg{result: result, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.state = stateFailed
			m.err = msg.err
			return m, tea.Quit
		}
		m.state = stateReady
		m.result = msg.result
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keymap.regenerate):
			if m.state != stateReady {
				return m, nil
			}
			m.state = stateLoading
			m.result = nil
			return m, tea.Batch(m.spinner.Tick, m.buildCmd())

		case key.Matches(msg, m.keymap.write):
			if m.state != stateReady {
				return m, nil
			}
			m.confirmed = true
			return m, tea.Quit
		}
	}

	return m, nil
}
