package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/intent"
	"github.com/meubolso/voz/internal/model"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify an utterance without executing it",
		Long:  `Run the intent classifier over the given text and print the result.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			classified := intent.NewClassifier().Classify(text)

			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Intenção:"), string(classified.Type))
			fmt.Printf("%s %.0f%%\n", cli.BoldStyle.Render("Confiança:"), classified.Confidence*100)
			if classified.Route != "" {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Rota:"), classified.Route)
			}
			if classified.QueryKey != "" {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Consulta:"), string(classified.QueryKey))
			}
			if classified.Type == model.IntentUnknown {
				fmt.Println(cli.SubtleStyle.Render("Nenhuma regra reconheceu o comando; a sessão ao vivo escalaria para a IA."))
			}
			return nil
		},
	}
}
