package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/common"
	"github.com/meubolso/voz/internal/model"
	"github.com/meubolso/voz/internal/query"
)

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [key]",
		Short: "Answer a canned financial question",
		Long: `Resolve one of the canned analytical questions against the stored
snapshot and print the spoken-style answer. Without an argument, lists
the available question keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(cli.FormatTitle("Consultas disponíveis"))
				for _, key := range query.Keys() {
					fmt.Printf("  %s\n", string(key))
				}
				return nil
			}

			key := model.QueryKey(args[0])
			known := false
			for _, k := range query.Keys() {
				if k == key {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("%w: %s", common.ErrUnknownQueryKey, args[0])
			}

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

			fmt.Println(buildResolver().Resolve(key, snap, time.Now()))
			return nil
		},
	}
}
