// Package tui renders the interactive voice session in the terminal. Typed
// lines stand in for speech: each submitted line is delivered to the session
// as a final transcript fragment, and the view mirrors every state change.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meubolso/voz/internal/session"
	"github.com/meubolso/voz/internal/speech"
)

// sessionViewMsg carries a session state change into the Update loop.
type sessionViewMsg struct {
	view session.View
}

// Model is the bubbletea model for the listen screen.
type Model struct {
	session      *Session
	input        textinput.Model
	view         session.View
	quitting     bool
}

// Session bundles the orchestrator with the console engine feeding it.
type Session struct {
	Orchestrator *session.Orchestrator
	Engine       *speech.ConsoleEngine
}

// NewModel creates the listen screen model.
func NewModel(s *Session) Model {
	input := textinput.New()
	input.Placeholder = "digite um comando de voz..."
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	return Model{
		session: s,
		input:   input,
		view:    s.Orchestrator.View(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionViewMsg:
		m.view = msg.view
		if !msg.view.Open && m.hasOutcome(msg.view) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.session.Orchestrator.Close()
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if line != "" {
				m.session.Engine.Push(line)
			}
			return m, nil

		case tea.KeyCtrlE:
			_ = m.session.Orchestrator.Execute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// hasOutcome reports whether the closed session produced something worth
// stopping for. Sessions closed mid-typing keep the program alive.
func (m Model) hasOutcome(v session.View) bool {
	return v.Answer != "" || v.Error != "" || v.Transcript != ""
}
