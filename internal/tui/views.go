package tui

import (
	"fmt"
	"strings"

	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return m.finalView()
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Assistente de Voz"))
	b.WriteString("\n\n")
	b.WriteString(m.stateLine())
	b.WriteString("\n")

	if m.view.Transcript != "" {
		b.WriteString(cli.TranscriptStyle.Render(m.view.Transcript))
		b.WriteString("\n")
	}
	if m.view.Interim != "" {
		b.WriteString(cli.InterimStyle.Render(m.view.Interim))
		b.WriteString("\n")
	}
	if badge := intentBadge(m.view.Pending); badge != "" {
		b.WriteString(cli.BadgeStyle.Render(badge))
		b.WriteString("\n")
	}
	if m.view.Answer != "" {
		b.WriteString("\n")
		b.WriteString(cli.RenderBox("Resposta", m.view.Answer))
		b.WriteString("\n")
	}
	if m.view.Error != "" {
		b.WriteString("\n")
		b.WriteString(cli.FormatError(m.view.Error))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(cli.SubtleStyle.Render("enter envia · ctrl+e executa agora · esc sai"))
	return b.String()
}

func (m Model) finalView() string {
	var b strings.Builder
	if m.view.Transcript != "" {
		b.WriteString(cli.SubtleStyle.Render("Você: " + m.view.Transcript))
		b.WriteString("\n")
	}
	if m.view.Answer != "" {
		b.WriteString(cli.RenderBox("Resposta", m.view.Answer))
		b.WriteString("\n")
	}
	if m.view.Error != "" {
		b.WriteString(cli.FormatError(m.view.Error))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) stateLine() string {
	switch m.view.State {
	case session.StateListening:
		return cli.InfoStyle.Render(cli.MicIcon + " Ouvindo...")
	case session.StateProcessing:
		return cli.InfoStyle.Render("Processando...")
	case session.StateAIThinking:
		return cli.InfoStyle.Render(cli.BrainIcon + " Pensando...")
	case session.StateQueryResult:
		return cli.SuccessStyle.Render(cli.SpeakerIcon + " Respondendo")
	case session.StateError:
		return cli.ErrorStyle.Render("Erro")
	default:
		return cli.SubtleStyle.Render("Iniciando...")
	}
}

// intentBadge renders the live classification hint shown while listening.
func intentBadge(pending model.Intent) string {
	label := ""
	switch pending.Type {
	case model.IntentNavigate:
		label = "navegar " + pending.Route
	case model.IntentTransaction:
		label = "lançamento"
	case model.IntentCommitment:
		label = "compromisso"
	case model.IntentQuery:
		label = "consulta"
	case model.IntentHelp:
		label = "ajuda"
	default:
		return ""
	}
	return fmt.Sprintf("%s (%.0f%%)", label, pending.Confidence*100)
}
