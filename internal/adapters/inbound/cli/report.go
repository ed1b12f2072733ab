package cli

import (
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/cache"
	"github.com/archscore/archscore/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "report <application>",
		Short: "Show the last stored scoring result for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			res, err := cache.New().Load(env.settings.HistoryDir, args[0])
			if err != nil {
				return fmt.Errorf("loading result: %w", err)
			}
			if res == nil {
				return fmt.Errorf("no stored result for %q; run archscore score first", args[0])
			}
			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}
