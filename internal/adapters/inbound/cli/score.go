package cli

import (
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/catalog"
	"github.com/archscore/archscore/internal/adapters/outbound/contextfile"
	"github.com/archscore/archscore/internal/adapters/outbound/tui"
	"github.com/archscore/archscore/internal/application"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		catalogPath string
		configPath  string
		answers     map[string]string
		maxRecs     int
		jsonOutput  bool
		noHistory   bool
		ciMode      bool
		minScore    int
	)

	cmd := &cobra.Command{
		Use:   "score <context.json>",
		Short: "Rank catalog architectures for an application context",
		Long: "Normalize the application context, derive its architectural intent, filter the catalog by hard " +
			"constraints and rank the eligible architectures. Answer clarification questions with --answer id=value.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			defer func() { _ = env.logger.Sync() }()

			catPath, err := env.catalogPath(catalogPath)
			if err != nil {
				return err
			}
			cfg, err := env.scoringConfig(configPath)
			if err != nil {
				return err
			}

			engine := application.NewScoringEngine(
				cfg,
				catalog.New(cfg.MinCatalogVersion),
				contextfile.New(),
				application.WithLogger(env.logger),
			)
			if _, err := engine.LoadCatalog(catPath); err != nil {
				return err
			}

			res, err := engine.Score(args[0], answers, maxRecs)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if !noHistory {
				env.record(catPath, res)
			}

			if jsonOutput {
				if err := renderJSON(cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res))
			}

			if ciMode && res.TopScore() < minScore {
				return fmt.Errorf("top score %d is below minimum %d", res.TopScore(), minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Architecture catalog (JSON or YAML)")
	cmd.Flags().StringVar(&configPath, "config", "", "Scoring profile (defaults to ./.archscore.yaml)")
	cmd.Flags().StringToStringVar(&answers, "answer", nil, "Clarification answer as id=value (repeatable)")
	cmd.Flags().IntVar(&maxRecs, "max", 0, "Maximum recommendations (0 uses the profile default)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not store the result or append to history")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the top score is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum top score for CI mode")

	return cmd
}
