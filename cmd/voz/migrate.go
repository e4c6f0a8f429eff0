package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/model"
)

func migrateCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Create or upgrade the snapshot database schema, optionally seeding demo data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if demo {
				if err := store.Seed(ctx, demoSnapshot(time.Now())); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
				fmt.Println(cli.FormatSuccess("Migrações aplicadas e dados de exemplo carregados."))
				return nil
			}

			fmt.Println(cli.FormatSuccess("Migrações aplicadas."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "seed demo data after migrating")
	return cmd
}

// demoSnapshot builds a small but representative data set so every voice
// command has something to work with out of the box.
func demoSnapshot(now time.Time) *model.Snapshot {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	return &model.Snapshot{
		Categories: []model.Category{
			{ID: "cat-casa", Name: "Contas da Casa", Type: model.CategoryTypeExpense},
			{ID: "cat-alimentacao", Name: "Alimentação", Type: model.CategoryTypeExpense},
			{ID: "cat-transporte", Name: "Transporte", Type: model.CategoryTypeExpense},
			{ID: "cat-lazer", Name: "Lazer", Type: model.CategoryTypeExpense},
			{ID: "cat-salario", Name: "Salário", Type: model.CategoryTypeIncome},
		},
		Transactions: []model.Transaction{
			{ID: "tx-1", Date: day(-1), Description: "Mercado", CategoryID: "cat-alimentacao", Kind: model.KindExpense, Amount: 230.5},
			{ID: "tx-2", Date: day(-3), Description: "Uber", CategoryID: "cat-transporte", Kind: model.KindExpense, Amount: 34.9},
			{ID: "tx-3", Date: day(-5), Description: "Cinema", CategoryID: "cat-lazer", Kind: model.KindExpense, Amount: 60},
			{ID: "tx-4", Date: day(-10), Description: "Salário", CategoryID: "cat-salario", Kind: model.KindIncome, Amount: 4200},
		},
		Commitments: []model.Commitment{
			{ID: "cm-1", DueDate: day(2), Description: "Conta de luz", CategoryID: "cat-casa", Amount: 185},
			{ID: "cm-2", DueDate: day(7), Description: "Internet", CategoryID: "cat-casa", Amount: 99.9},
			{ID: "cm-3", DueDate: day(-4), Description: "Cartão de crédito", CategoryID: "cat-casa", Amount: 820},
		},
		Goals: []model.SavingsGoal{
			{ID: "goal-1", Name: "Viagem de férias", TargetAmount: 5000, CurrentAmount: 1500},
		},
		Budgets: []model.Budget{
			{ID: "bud-1", CategoryID: "cat-alimentacao", Limit: 800},
			{ID: "bud-2", CategoryID: "cat-lazer", Limit: 200},
		},
		PaymentMethods: []model.PaymentMethod{
			{ID: "pm-1", Name: "Pix"},
			{ID: "pm-2", Name: "Cartão Nubank"},
			{ID: "pm-3", Name: "Dinheiro"},
		},
		Suppliers: []model.Supplier{
			{ID: "sup-1", Name: "Enel"},
			{ID: "sup-2", Name: "Mercado Pão de Açúcar"},
		},
	}
}
