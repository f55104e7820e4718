package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
	"github.com/yvolo/yvolo/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("failure already reported")

type rootOptions struct {
	verbose    bool
	create     string
	typeName   string
	openEditor bool
	tasks      []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "yvolo",
		Short: "Scaffold projects with a master prompt and a task roadmap",
		Long: "yvolo creates project folders from two fixed templates, records tasks in the roadmap,\n" +
			"initializes git and, when the GitHub CLI is logged in, publishes the repository.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("create") {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(a.cfg))
				return nil
			}

			projectType := domain.ParseProjectType(opts.typeName)
			if projectType == domain.ProjectTypeUnknown {
				a.logger.Warn("unknown project type, no stub will be added", "type", opts.typeName)
			}
			return a.create(cmd, domain.ProjectRequest{
				Name:       opts.create,
				Type:       projectType,
				OpenEditor: opts.openEditor,
				Tasks:      opts.tasks,
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every step to stderr")
	cmd.Flags().StringVar(&opts.create, "create", "", "Create a project with this name")
	cmd.Flags().StringVar(&opts.typeName, "type", "Empty", "Project type (Empty, Python, Flask)")
	cmd.Flags().BoolVar(&opts.openEditor, "open-editor", true, "Open the new project in the editor")
	cmd.Flags().StringArrayVar(&opts.tasks, "task", nil, "Task to add to the roadmap (repeatable)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newNewCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newChatCmd(opts))
	cmd.AddCommand(newIdeasCmd())
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Errors not yet shown to the user are printed to stderr.
func Execute() error {
	return execute(newRootCmd(), os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show yvolo version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "yvolo %s (%s)\n", version, commit)
			return nil
		},
	}
}
