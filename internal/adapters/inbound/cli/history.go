package cli

import (
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/gitinfo"
	"github.com/archscore/archscore/internal/adapters/outbound/history"
	"github.com/archscore/archscore/internal/adapters/outbound/tui"
	"github.com/archscore/archscore/internal/application"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		app        string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded scoring runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			svc := application.NewHistoryService(history.New(), gitinfo.New())

			entries, err := svc.List(env.settings.HistoryDir, app)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&app, "app", "", "Only show runs for this application")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
