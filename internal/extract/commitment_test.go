package extract

import (
	"testing"
	"time"

	"github.com/meubolso/voz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2026-08-12.
var now = time.Date(2026, time.August, 12, 14, 30, 0, 0, time.Local)

func testCategories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Moradia", Type: model.CategoryTypeExpense},
		{ID: "c2", Name: "Alimentação", Type: model.CategoryTypeExpense},
		{ID: "c3", Name: "Transporte", Type: model.CategoryTypeExpense},
		{ID: "c4", Name: "Contas da Casa", Type: model.CategoryTypeExpense},
		{ID: "c5", Name: "Salário", Type: model.CategoryTypeIncome},
	}
}

func TestCommitmentFullUtterance(t *testing.T) {
	draft := Commitment("criar compromisso luz 200 dia 10", testCategories(), now)

	assert.Equal(t, "Luz", draft.Description)
	assert.InDelta(t, 200.0, draft.Amount, 0.001)
	// Day 10 already passed on Aug 12, so it rolls to September 10.
	assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.Local), draft.DueDate)
	assert.Equal(t, "c4", draft.CategoryID)
}

func TestCommitmentAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "largest number wins", text: "internet 99 dia 5", want: 99},
		{name: "comma decimal", text: "academia 89,90", want: 89.9},
		{name: "ceiling filters digit runs", text: "protocolo 123456789 cobranca 300", want: 300},
		{name: "written number", text: "anotar conta de luz de duzentos reais", want: 200},
		{name: "no amount defaults to zero", text: "agendar dentista", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Commitment(tt.text, nil, now)
			assert.InDelta(t, tt.want, draft.Amount, 0.001)
		})
	}
}

func TestCommitmentDueDate(t *testing.T) {
	today := time.Date(2026, time.August, 12, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{name: "tomorrow", text: "pagar luz amanhã", want: today.AddDate(0, 0, 1)},
		{name: "next week", text: "conta da internet semana que vem", want: today.AddDate(0, 0, 7)},
		{name: "end of month", text: "aluguel no fim do mês", want: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)},
		{name: "day still ahead this month", text: "cartão dia 20", want: time.Date(2026, time.August, 20, 0, 0, 0, 0, time.Local)},
		{name: "day today stays today", text: "boleto dia 12", want: today},
		{name: "day already passed rolls a month", text: "boleto dia 5", want: time.Date(2026, time.September, 5, 0, 0, 0, 0, time.Local)},
		{name: "month name ahead", text: "seguro em outubro", want: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local)},
		{name: "month name with day", text: "ipva 15 de janeiro", want: time.Date(2027, time.January, 15, 0, 0, 0, 0, time.Local)},
		{name: "no mention defaults to today", text: "pagar faxineira", want: today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Commitment(tt.text, nil, now)
			assert.Equal(t, tt.want, draft.DueDate)
		})
	}
}

func TestCommitmentDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "strips trigger and noise", text: "criar compromisso luz 200 dia 10", want: "Luz"},
		{name: "keeps meaningful words", text: "agendar conta de internet fibra 120", want: "Internet fibra"},
		{name: "dia drops paired number", text: "anotar conta mensalidade dia 7", want: "Mensalidade"},
		{name: "falls back to first words", text: "dia 10 de 200", want: "Dia de"},
		{name: "empty falls back to literal", text: "200", want: "Compromisso"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Commitment(tt.text, nil, now)
			assert.Equal(t, tt.want, draft.Description)
		})
	}
}

func TestMatchCategoryStages(t *testing.T) {
	cats := testCategories()

	t.Run("theme keyword", func(t *testing.T) {
		draft := Commitment("pagar aluguel 1200", cats, now)
		assert.Equal(t, "c1", draft.CategoryID)
	})

	t.Run("direct name match", func(t *testing.T) {
		draft := Commitment("conta de transporte escolar 300", cats, now)
		assert.Equal(t, "c3", draft.CategoryID)
	})

	t.Run("income categories are not eligible", func(t *testing.T) {
		draft := Commitment("agendar salário 3000", cats, now)
		assert.Empty(t, draft.CategoryID)
	})

	t.Run("no match leaves category unset", func(t *testing.T) {
		draft := Commitment("agendar dentista 150", cats, now)
		assert.Empty(t, draft.CategoryID)
	})

	t.Run("nil category list", func(t *testing.T) {
		draft := Commitment("pagar aluguel 1200", nil, now)
		assert.Empty(t, draft.CategoryID)
	})
}

func TestCommitmentIsDeterministic(t *testing.T) {
	first := Commitment("criar compromisso luz 200 dia 10", testCategories(), now)
	second := Commitment("criar compromisso luz 200 dia 10", testCategories(), now)
	require.Equal(t, first, second)
}
