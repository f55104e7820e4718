package cli

import (
	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/config"
	"github.com/yvolo/yvolo/internal/domain"
)

type configView struct {
	Source      string             `json:"source" yaml:"source"`
	Candidates  []string           `json:"candidates" yaml:"candidates"`
	Settings    domain.AppConfig   `json:"settings" yaml:"settings"`
	Environment config.Environment `json:"environment" yaml:"environment"`
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatJSON, formatYAML); err != nil {
				return err
			}
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			source := a.cfgSource
			if source == "" {
				source = "built-in default"
			}
			view := configView{
				Source:      source,
				Candidates:  config.NewResolver(a.env, a.logger).Candidates(),
				Settings:    a.cfg,
				Environment: a.env,
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeYAML(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format (yaml, json)")

	return cmd
}
