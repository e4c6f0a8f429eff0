package intent

import (
	"testing"

	"github.com/meubolso/voz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name           string
		text           string
		wantType       model.IntentType
		wantRoute      string
		wantQueryKey   model.QueryKey
		wantConfidence float64
	}{
		{
			name:           "exact route keyword",
			text:           "relatórios",
			wantType:       model.IntentNavigate,
			wantRoute:      "/reports",
			wantConfidence: 0.98,
		},
		{
			name:           "exact route keyword with pagina prefix",
			text:           "página categorias",
			wantType:       model.IntentNavigate,
			wantRoute:      "/categories",
			wantConfidence: 0.98,
		},
		{
			name:           "help trigger",
			text:           "o que você pode fazer?",
			wantType:       model.IntentHelp,
			wantConfidence: 0.95,
		},
		{
			name:           "overdue commitments query",
			text:           "tenho contas vencidas?",
			wantType:       model.IntentQuery,
			wantQueryKey:   model.QueryCommitmentsOverdue,
			wantConfidence: 0.92,
		},
		{
			name:           "spent month query",
			text:           "quanto gastei esse mês?",
			wantType:       model.IntentQuery,
			wantQueryKey:   model.QuerySpentMonth,
			wantConfidence: 0.92,
		},
		{
			name:           "balance query",
			text:           "qual o saldo da minha conta",
			wantType:       model.IntentQuery,
			wantQueryKey:   model.QueryBalanceMonth,
			wantConfidence: 0.92,
		},
		{
			name:           "navigation trigger with route keyword",
			text:           "quero ver os relatórios do ano",
			wantType:       model.IntentNavigate,
			wantRoute:      "/reports",
			wantConfidence: 0.93,
		},
		{
			name:           "commitment trigger",
			text:           "criar compromisso luz 200 dia 10",
			wantType:       model.IntentCommitment,
			wantConfidence: 0.87,
		},
		{
			name:           "commitment beats transaction on overlap",
			text:           "paguei o boleto da internet",
			wantType:       model.IntentCommitment,
			wantConfidence: 0.87,
		},
		{
			name:           "transaction trigger",
			text:           "gastei 50 reais no mercado",
			wantType:       model.IntentTransaction,
			wantConfidence: 0.87,
		},
		{
			name:           "heuristic number plus currency",
			text:           "uns 30 reais de lanche",
			wantType:       model.IntentTransaction,
			wantConfidence: 0.68,
		},
		{
			name:           "unknown",
			text:           "isso não quer dizer nada",
			wantType:       model.IntentUnknown,
			wantConfidence: 0,
		},
		{
			name:           "empty",
			text:           "",
			wantType:       model.IntentUnknown,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 0.001)
			assert.Equal(t, tt.wantRoute, got.Route)
			assert.Equal(t, tt.wantQueryKey, got.QueryKey)
			assert.Equal(t, tt.text, got.RawText)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier()
	first := c.Classify("gastei 50 reais no mercado")
	second := c.Classify("gastei 50 reais no mercado")
	require.Equal(t, first, second)
}

func TestClassifyQueryPrecedesNavigation(t *testing.T) {
	// "quero ver" is a navigation trigger and "orcamento" a route keyword,
	// but the explicit query stage runs first by declared precedence.
	c := NewClassifier()
	got := c.Classify("quero ver como está o orçamento")
	assert.Equal(t, model.IntentQuery, got.Type)
	assert.Equal(t, model.QueryBudgetStatus, got.QueryKey)
	assert.InDelta(t, 0.92, got.Confidence, 0.001)
}
