package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/archscore/archscore/internal/adapters/outbound/config"
	"github.com/archscore/archscore/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .archscore.yaml scoring profile",
		Long:  "Create a .archscore.yaml holding the default weights, thresholds and limits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultScoringConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .archscore.yaml")

	return cmd
}

func generateConfig(cfg domain.ScoringConfig) string {
	var b strings.Builder
	b.WriteString("# archscore scoring profile\n\n")

	b.WriteString("weights:\n")
	// Ordered output for readability
	for _, dim := range domain.ScoreDimensions {
		fmt.Fprintf(&b, "  %s: %.2f\n", dim, cfg.Weights[dim])
	}

	fmt.Fprintf(&b, "\nmin_catalog_version: %q\n", cfg.MinCatalogVersion)
	fmt.Fprintf(&b, "min_catalog_quality: %s\n", cfg.MinCatalogQuality)
	fmt.Fprintf(&b, "max_recommendations: %d\n", cfg.MaxRecommendations)
	fmt.Fprintf(&b, "max_questions: %d\n", cfg.MaxQuestions)
	fmt.Fprintf(&b, "\nconfidence_thresholds:\n  high: %d\n  medium: %d\n",
		cfg.ConfidenceThresholds.High, cfg.ConfidenceThresholds.Medium)
	return b.String()
}
