package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/meubolso/voz/internal/model"
)

// Snapshot loads the complete read-only view of the user's financial data.
// It implements service.SnapshotProvider.
func (s *SnapshotStore) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	var err error
	if snap.Categories, err = s.loadCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Transactions, err = s.loadTransactions(ctx); err != nil {
		return nil, err
	}
	if snap.Commitments, err = s.loadCommitments(ctx); err != nil {
		return nil, err
	}
	if snap.Goals, err = s.loadGoals(ctx); err != nil {
		return nil, err
	}
	if snap.Budgets, err = s.loadBudgets(ctx); err != nil {
		return nil, err
	}
	if snap.PaymentMethods, err = s.loadPaymentMethods(ctx); err != nil {
		return nil, err
	}
	if snap.Suppliers, err = s.loadSuppliers(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *SnapshotStore) loadCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer closeRows(rows)

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var categoryType string
		if err := rows.Scan(&c.ID, &c.Name, &categoryType); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Type = model.CategoryType(categoryType)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SnapshotStore) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, COALESCE(category_id, ''), kind, amount
		FROM transactions
		ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer closeRows(rows)

	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var kind string
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.CategoryID, &kind, &t.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Kind = model.TransactionKind(kind)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *SnapshotStore) loadCommitments(ctx context.Context) ([]model.Commitment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, due_date, description, COALESCE(category_id, ''), amount, paid
		FROM commitments
		ORDER BY due_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitments: %w", err)
	}
	defer closeRows(rows)

	var commitments []model.Commitment
	for rows.Next() {
		var c model.Commitment
		if err := rows.Scan(&c.ID, &c.DueDate, &c.Description, &c.CategoryID, &c.Amount, &c.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan commitment: %w", err)
		}
		commitments = append(commitments, c)
	}
	return commitments, rows.Err()
}

func (s *SnapshotStore) loadGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, current_amount
		FROM savings_goals
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query savings goals: %w", err)
	}
	defer closeRows(rows)

	var goals []model.SavingsGoal
	for rows.Next() {
		var g model.SavingsGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount); err != nil {
			return nil, fmt.Errorf("failed to scan savings goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SnapshotStore) loadBudgets(ctx context.Context) ([]model.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, category_id, monthly_limit FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer closeRows(rows)

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Limit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (s *SnapshotStore) loadPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	defer closeRows(rows)

	var methods []model.PaymentMethod
	for rows.Next() {
		var m model.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan payment method: %w", err)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (s *SnapshotStore) loadSuppliers(ctx context.Context) ([]model.Supplier, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer closeRows(rows)

	var suppliers []model.Supplier
	for rows.Next() {
		var sp model.Supplier
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, rows.Err()
}

func closeRows(rows *sql.Rows) {
	_ = rows.Close()
}
