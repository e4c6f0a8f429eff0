package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the stored categories",
		Long:  `Display the categories voice commands can match against.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			if len(snap.Categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma categoria cadastrada. Use 'voz migrate --demo' para dados de exemplo."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Nome"),
				cli.BoldStyle.Render("Tipo"))
			for _, cat := range snap.Categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.Name, string(cat.Type))
			}
			return nil
		},
	}
}
