package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
	"github.com/yvolo/yvolo/internal/domain"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the projects created so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			entries, err := a.history.Load()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if jsonOutput {
				if entries == nil {
					entries = []domain.ScaffoldEntry{}
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries, a.cfg.Tag()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
