package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/extract"
)

func commitmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commitment <text>",
		Short: "Extract commitment parameters from an utterance",
		Long: `Parse a commitment utterance ("criar compromisso luz 200 dia 10") into
its structured draft, resolving the category against the stored ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snap, err := store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			text := strings.Join(args, " ")
			draft := extract.Commitment(text, snap.Categories, time.Now())

			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Descrição:"), draft.Description)
			fmt.Printf("%s %.2f\n", cli.BoldStyle.Render("Valor:"), draft.Amount)
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Vencimento:"), draft.DueDate.Format("02/01/2006"))
			if draft.CategoryID != "" {
				name := draft.CategoryID
				if cat, ok := snap.CategoryByID(draft.CategoryID); ok {
					name = cat.Name
				}
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Categoria:"), name)
			} else {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma categoria correspondeu."))
			}
			return nil
		},
	}
}
