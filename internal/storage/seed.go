package storage

import (
	"context"
	"fmt"

	"github.com/meubolso/voz/internal/model"
)

// Seed writes the snapshot's contents into the store, replacing existing
// rows with the same IDs. It exists for demo data and tests.
func (s *SnapshotStore) Seed(ctx context.Context, snap *model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range snap.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO categories (id, name, type) VALUES (?, ?, ?)`,
			c.ID, c.Name, string(c.Type)); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}

	for _, t := range snap.Transactions {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO transactions (id, date, description, category_id, kind, amount)
			 VALUES (?, ?, ?, NULLIF(?, ''), ?, ?)`,
			t.ID, t.Date, t.Description, t.CategoryID, string(t.Kind), t.Amount); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", t.ID, err)
		}
	}

	for _, c := range snap.Commitments {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO commitments (id, due_date, description, category_id, amount, paid)
			 VALUES (?, ?, ?, NULLIF(?, ''), ?, ?)`,
			c.ID, c.DueDate, c.Description, c.CategoryID, c.Amount, c.Paid); err != nil {
			return fmt.Errorf("failed to seed commitment %s: %w", c.ID, err)
		}
	}

	for _, g := range snap.Goals {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO savings_goals (id, name, target_amount, current_amount)
			 VALUES (?, ?, ?, ?)`,
			g.ID, g.Name, g.TargetAmount, g.CurrentAmount); err != nil {
			return fmt.Errorf("failed to seed savings goal %s: %w", g.ID, err)
		}
	}

	for _, b := range snap.Budgets {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO budgets (id, category_id, monthly_limit) VALUES (?, ?, ?)`,
			b.ID, b.CategoryID, b.Limit); err != nil {
			return fmt.Errorf("failed to seed budget %s: %w", b.ID, err)
		}
	}

	for _, m := range snap.PaymentMethods {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO payment_methods (id, name) VALUES (?, ?)`,
			m.ID, m.Name); err != nil {
			return fmt.Errorf("failed to seed payment method %s: %w", m.ID, err)
		}
	}

	for _, sp := range snap.Suppliers {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO suppliers (id, name) VALUES (?, ?)`,
			sp.ID, sp.Name); err != nil {
			return fmt.Errorf("failed to seed supplier %s: %w", sp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
