package llm

import "github.com/meubolso/voz/internal/normalize"

// cannedAnswers maps topic trigger words to a spoken-friendly fallback answer
// used when no AI provider is configured or the provider call fails. Order
// matters: the first matching topic wins.
var cannedAnswers = []struct {
	triggers []string
	answer   string
}{
	{
		triggers: []string{"economizar", "economia", "poupar", "guardar dinheiro"},
		answer:   "Para economizar, comece registrando todos os gastos e defina um limite mensal por categoria. Pequenos cortes somam no fim do mês.",
	},
	{
		triggers: []string{"investir", "investimento", "aplicar", "render"},
		answer:   "Antes de investir, monte uma reserva de emergência de três a seis meses de despesas. Depois, busque opções de baixo risco para começar.",
	},
	{
		triggers: []string{"divida", "dividas", "devendo", "emprestimo", "financiamento"},
		answer:   "Priorize as dívidas com os maiores juros primeiro e tente renegociar prazos. Evite assumir novas parcelas enquanto isso.",
	},
	{
		triggers: []string{"orcamento", "planejamento", "planejar"},
		answer:   "Um bom começo é a regra cinquenta, trinta, vinte: metade da renda para o essencial, trinta por cento para desejos e vinte por cento para poupança.",
	},
	{
		triggers: []string{"cartao", "credito", "fatura"},
		answer:   "Use o cartão de crédito só para o que cabe no orçamento e pague a fatura inteira. Juros rotativos crescem muito rápido.",
	},
}

const defaultCannedAnswer = "Não consegui responder essa pergunta agora. " +
	"Tente perguntar sobre seu saldo, gastos ou compromissos."

// CannedAnswer returns a local fallback answer for a free-form question.
// It never fails and always returns something speakable.
func CannedAnswer(question string) string {
	text := normalize.Text(question)
	for _, c := range cannedAnswers {
		if normalize.ContainsAny(text, c.triggers) {
			return c.answer
		}
	}
	return defaultCannedAnswer
}
