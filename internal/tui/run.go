package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meubolso/voz/internal/session"
)

// Run opens the session, wires its state changes into the bubbletea program
// and blocks until the session ends or the user quits.
func Run(ctx context.Context, s *Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithContext(ctx))

	// The listener runs with the orchestrator's lock held; Send only queues
	// the message, so no re-entry happens here.
	s.Orchestrator.SetListener(func(v session.View) {
		p.Send(sessionViewMsg{view: v})
	})

	s.Orchestrator.Open(ctx)
	defer s.Orchestrator.Close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
