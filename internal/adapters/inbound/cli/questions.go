package cli

import (
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/catalog"
	"github.com/archscore/archscore/internal/adapters/outbound/contextfile"
	"github.com/archscore/archscore/internal/adapters/outbound/tui"
	"github.com/archscore/archscore/internal/application"
	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "questions <context.json>",
		Short: "List clarification questions for an application context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			cfg, err := env.scoringConfig(configPath)
			if err != nil {
				return err
			}

			engine := application.NewScoringEngine(cfg, catalog.New(cfg.MinCatalogVersion), contextfile.New(),
				application.WithLogger(env.logger))
			qs, err := engine.Questions(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, qs)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderQuestions(qs))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Scoring profile (defaults to ./.archscore.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output questions as JSON")

	return cmd
}
