package cli

import (
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/catalog"
	"github.com/archscore/archscore/internal/adapters/outbound/contextfile"
	"github.com/archscore/archscore/internal/adapters/outbound/tui"
	"github.com/archscore/archscore/internal/application"
	"github.com/archscore/archscore/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate architecture catalogs",
	}
	cmd.AddCommand(newCatalogShowCmd())
	cmd.AddCommand(newValidateCmd("catalog"))
	return cmd
}

func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Validate application context documents",
	}
	cmd.AddCommand(newValidateCmd("context"))
	return cmd
}

func newCatalogShowCmd() *cobra.Command {
	var (
		catalogPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the architectures in a catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			path, err := env.catalogPath(catalogPath)
			if err != nil {
				return err
			}
			cat, err := catalog.New("").Load(path)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, cat)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Architecture catalog (JSON or YAML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output catalog as JSON")

	return cmd
}

func newValidateCmd(kind string) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: fmt.Sprintf("Check a %s document and report issues", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService(catalog.New(""), contextfile.New())

			var (
				report *domain.ValidationReport
				err    error
			)
			if kind == "catalog" {
				report, err = svc.ValidateCatalog(args[0])
			} else {
				report, err = svc.ValidateContext(args[0])
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(report))
			}

			if !report.Valid {
				return fmt.Errorf("%s is invalid: %d issue(s)", kind, len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}
