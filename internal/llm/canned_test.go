package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCannedAnswer(t *testing.T) {
	tests := []struct {
		name     string
		question string
		contains string
	}{
		{
			name:     "savings advice",
			question: "Como posso economizar mais?",
			contains: "registrando todos os gastos",
		},
		{
			name:     "investment advice",
			question: "Vale a pena investir agora?",
			contains: "reserva de emergência",
		},
		{
			name:     "debt advice",
			question: "O que faço com minhas dívidas?",
			contains: "maiores juros",
		},
		{
			name:     "budget advice",
			question: "Como montar um orçamento?",
			contains: "cinquenta, trinta, vinte",
		},
		{
			name:     "credit card advice",
			question: "Devo parcelar no cartão de crédito?",
			contains: "fatura inteira",
		},
		{
			name:     "unknown topic falls back",
			question: "Qual a previsão do tempo?",
			contains: "Não consegui responder",
		},
		{
			name:     "accents do not matter",
			question: "como ECONOMIZAR?",
			contains: "registrando todos os gastos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := CannedAnswer(tt.question)
			assert.Contains(t, answer, tt.contains)
		})
	}
}
