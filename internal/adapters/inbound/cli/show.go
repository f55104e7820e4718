package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <project>",
		Short: "Show the roadmap of a project",
		Long:  "Parse hoja_de_ruta.txt of a project (a name under the projects folder or a path) and print its fields and tasks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rec, err := a.roadmaps.Read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, rec)
			case formatYAML:
				return writeYAML(out, rec)
			default:
				fmt.Fprint(out, tui.RenderRecord(rec, a.cfg.Tag()))
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format (text, json, yaml)")

	return cmd
}
