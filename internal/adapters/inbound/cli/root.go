package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archscore",
		Short: "Rank reference architectures for an application",
		Long: "archscore reads an application context, derives what the application needs, filters an architecture " +
			"catalog by hard constraints and ranks what remains with an explanation for every decision.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (env ARCHSCORE_LOG_LEVEL)")
	cmd.PersistentFlags().String("log-format", "", "Log format: console or json (env ARCHSCORE_LOG_FORMAT)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newQuestionsCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newContextCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
