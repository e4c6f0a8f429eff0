package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meubolso/voz/internal/model"
)

func TestBuildFinancialContext(t *testing.T) {
	now := time.Date(2026, time.August, 12, 10, 0, 0, 0, time.UTC)
	snap := &model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "t1", Kind: model.KindIncome, Amount: 3000, Date: now.AddDate(0, 0, -5)},
			{ID: "t2", Kind: model.KindExpense, Amount: 450, CategoryID: "c1", Date: now.AddDate(0, 0, -3)},
			{ID: "t3", Kind: model.KindExpense, Amount: 100, CategoryID: "c1", Date: now.AddDate(0, -1, 0)},
		},
		Commitments: []model.Commitment{
			{ID: "p1", Description: "Aluguel", Amount: 1200, DueDate: now.AddDate(0, 0, 5)},
			{ID: "p2", Description: "Luz", Amount: 180, DueDate: now.AddDate(0, 0, -2)},
			{ID: "p3", Description: "Internet", Amount: 99, DueDate: now.AddDate(0, 0, -10), Paid: true},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Name: "Viagem", TargetAmount: 5000, CurrentAmount: 1250},
		},
		Budgets: []model.Budget{
			{ID: "b1", CategoryID: "c1", Limit: 600},
		},
		Categories: []model.Category{
			{ID: "c1", Name: "Alimentação"},
		},
	}

	text := BuildFinancialContext(snap, now)

	assert.Contains(t, text, "receitas R$ 3.000,00")
	assert.Contains(t, text, "despesas R$ 450,00")
	assert.Contains(t, text, "saldo R$ 2.550,00")
	assert.Contains(t, text, "Compromissos pendentes: 2")
	assert.Contains(t, text, "1 vencidos")
	assert.Contains(t, text, `Meta "Viagem"`)
	assert.Contains(t, text, "25%")
	assert.Contains(t, text, `Orçamento "Alimentação": gasto R$ 450,00 de R$ 600,00`)
}

func TestBuildFinancialContextNilSnapshot(t *testing.T) {
	text := BuildFinancialContext(nil, time.Now())
	assert.Equal(t, "Nenhum dado financeiro disponível.", text)
}
