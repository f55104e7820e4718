package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/config"
	"github.com/yvolo/yvolo/internal/adapters/outbound/templates"
	"github.com/yvolo/yvolo/internal/domain"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install default settings and templates",
		Long: "Write config/settings.json, promp_maestro.txt and hoja_de_ruta.txt with built-in defaults\n" +
			"into the application folder. Existing files are kept unless --force is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			settings := config.SettingsPath(a.env.AppDir)
			written, err := config.WriteSettings(settings, domain.DefaultAppConfig(), force)
			if err != nil {
				return err
			}
			report := func(path string, created bool) {
				if created {
					fmt.Fprintf(out, "Created %s\n", path)
				} else {
					fmt.Fprintf(out, "Kept %s (use --force to overwrite)\n", path)
				}
			}
			report(settings, written)

			res, err := templates.Install(a.env.AppDir, force)
			if err != nil {
				return fmt.Errorf("installing templates: %w", err)
			}
			for _, p := range res.Written {
				report(p, true)
			}
			for _, p := range res.Skipped {
				report(p, false)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}
