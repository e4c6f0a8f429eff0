package llm

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meubolso/voz/internal/model"
)

var contextPrinter = message.NewPrinter(language.BrazilianPortuguese)

// BuildFinancialContext renders a compact pt-BR summary of the snapshot for
// the AI prompt. It stays under a few hundred words regardless of how much
// data the snapshot holds.
func BuildFinancialContext(snap *model.Snapshot, now time.Time) string {
	if snap == nil {
		return "Nenhum dado financeiro disponível."
	}

	var b strings.Builder
	year, month, _ := now.Date()

	var income, expenses float64
	for _, t := range snap.Transactions {
		ty, tm, _ := t.Date.Date()
		if ty != year || tm != month {
			continue
		}
		switch t.Kind {
		case model.KindIncome:
			income += t.Amount
		case model.KindExpense:
			expenses += t.Amount
		}
	}
	fmt.Fprintf(&b, "Mês atual: receitas %s, despesas %s, saldo %s.\n",
		contextBRL(income), contextBRL(expenses), contextBRL(income-expenses))

	var pendingTotal float64
	var pending, overdue int
	for _, c := range snap.Commitments {
		if c.Paid {
			continue
		}
		pending++
		pendingTotal += c.Amount
		if c.DueDate.Before(now) {
			overdue++
		}
	}
	if pending > 0 {
		fmt.Fprintf(&b, "Compromissos pendentes: %d somando %s", pending, contextBRL(pendingTotal))
		if overdue > 0 {
			fmt.Fprintf(&b, ", sendo %d vencidos", overdue)
		}
		b.WriteString(".\n")
	}

	for i, g := range snap.Goals {
		if i >= 3 {
			break
		}
		pct := 0.0
		if g.TargetAmount > 0 {
			pct = g.CurrentAmount / g.TargetAmount * 100
		}
		fmt.Fprintf(&b, "Meta %q: %s de %s (%.0f%%).\n",
			g.Name, contextBRL(g.CurrentAmount), contextBRL(g.TargetAmount), pct)
	}

	spentByCategory := make(map[string]float64)
	for _, t := range snap.Transactions {
		ty, tm, _ := t.Date.Date()
		if t.Kind == model.KindExpense && ty == year && tm == month {
			spentByCategory[t.CategoryID] += t.Amount
		}
	}
	for i, bud := range snap.Budgets {
		if i >= 5 {
			break
		}
		name := bud.CategoryID
		if cat, ok := snap.CategoryByID(bud.CategoryID); ok {
			name = cat.Name
		}
		fmt.Fprintf(&b, "Orçamento %q: gasto %s de %s.\n",
			name, contextBRL(spentByCategory[bud.CategoryID]), contextBRL(bud.Limit))
	}

	return strings.TrimSpace(b.String())
}

func contextBRL(v float64) string {
	return contextPrinter.Sprintf("R$ %.2f", v)
}
