package main

import (
	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/session"
	"github.com/meubolso/voz/internal/speech"
	"github.com/meubolso/voz/internal/tui"
)

func listenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Start an interactive voice session",
		Long: `Open a live voice session in the terminal. Typed lines stand in for
speech: each submitted line is interpreted exactly like a finalized
transcript fragment, including the live intent badge and the debounced
auto-execution.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			responder, cleanup, err := buildResponder()
			if err != nil {
				return err
			}
			defer cleanup()

			engine := speech.NewConsoleEngine()
			orchestrator := session.New(session.Deps{
				Engine:     engine,
				Resolver:   buildResolver(),
				Navigation: printNavigator{},
				Snapshots:  store,
				Responder:  responder,
			}, sessionConfig())

			return tui.Run(ctx, &tui.Session{
				Orchestrator: orchestrator,
				Engine:       engine,
			})
		},
	}
}
