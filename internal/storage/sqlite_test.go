package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meubolso/voz/internal/model"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()

	store, err := NewSnapshotStore(filepath.Join(t.TempDir(), "voz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestSnapshotEmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Commitments)
	assert.Empty(t, snap.Categories)
}

func TestSeedAndSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	seed := &model.Snapshot{
		Categories: []model.Category{
			{ID: "c1", Name: "Contas da Casa", Type: model.CategoryTypeExpense},
			{ID: "c2", Name: "Salário", Type: model.CategoryTypeIncome},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Date: due.AddDate(0, 0, -30), Description: "Mercado", CategoryID: "c1", Kind: model.KindExpense, Amount: 230.5},
			{ID: "t2", Date: due.AddDate(0, 0, -28), Description: "Salário", CategoryID: "c2", Kind: model.KindIncome, Amount: 4200},
		},
		Commitments: []model.Commitment{
			{ID: "p1", DueDate: due, Description: "Luz", CategoryID: "c1", Amount: 200},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Name: "Viagem", TargetAmount: 5000, CurrentAmount: 1500},
		},
		Budgets: []model.Budget{
			{ID: "b1", CategoryID: "c1", Limit: 800},
		},
		PaymentMethods: []model.PaymentMethod{
			{ID: "pm1", Name: "Cartão Nubank"},
		},
		Suppliers: []model.Supplier{
			{ID: "s1", Name: "Enel"},
		},
	}

	require.NoError(t, store.Seed(ctx, seed))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snap.Categories, 2)
	assert.Equal(t, "Contas da Casa", snap.Categories[0].Name)
	assert.True(t, snap.Categories[0].AcceptsExpense())

	require.Len(t, snap.Transactions, 2)
	assert.Equal(t, "Salário", snap.Transactions[0].Description)
	assert.Equal(t, model.KindIncome, snap.Transactions[0].Kind)

	require.Len(t, snap.Commitments, 1)
	assert.Equal(t, "Luz", snap.Commitments[0].Description)
	assert.True(t, snap.Commitments[0].DueDate.Equal(due))
	assert.False(t, snap.Commitments[0].Paid)

	require.Len(t, snap.Goals, 1)
	assert.InDelta(t, 1500, snap.Goals[0].CurrentAmount, 0.001)

	require.Len(t, snap.Budgets, 1)
	assert.InDelta(t, 800, snap.Budgets[0].Limit, 0.001)

	require.Len(t, snap.PaymentMethods, 1)
	require.Len(t, snap.Suppliers, 1)
}

func TestSeedReplacesExistingRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &model.Snapshot{
		Goals: []model.SavingsGoal{{ID: "g1", Name: "Viagem", TargetAmount: 5000, CurrentAmount: 100}},
	}
	require.NoError(t, store.Seed(ctx, first))

	second := &model.Snapshot{
		Goals: []model.SavingsGoal{{ID: "g1", Name: "Viagem", TargetAmount: 5000, CurrentAmount: 900}},
	}
	require.NoError(t, store.Seed(ctx, second))

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Goals, 1)
	assert.InDelta(t, 900, snap.Goals[0].CurrentAmount, 0.001)
}

func TestNewSnapshotStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewSnapshotStore("")
	assert.Error(t, err)
}
