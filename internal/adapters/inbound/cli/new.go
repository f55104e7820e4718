package cli

import (
	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/domain"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a project interactively",
		Long:  "Ask for the project name, type, whether to open the editor and the initial tasks, then create the project.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			req, err := askProjectRequest(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			return a.create(cmd, req)
		},
	}
}

func askProjectRequest(p *prompter) (domain.ProjectRequest, error) {
	name, err := p.Required("Project name")
	if err != nil {
		return domain.ProjectRequest{}, err
	}

	options := make([]string, len(domain.ValidProjectTypes))
	for i, t := range domain.ValidProjectTypes {
		options[i] = t.String()
	}
	idx, err := p.Choice("Project type", options, 0)
	if err != nil {
		return domain.ProjectRequest{}, err
	}

	openEditor, err := p.Confirm("Open in editor", true)
	if err != nil {
		return domain.ProjectRequest{}, err
	}

	tasks, err := p.Lines("Tasks")
	if err != nil {
		return domain.ProjectRequest{}, err
	}

	return domain.ProjectRequest{
		Name:       name,
		Type:       domain.ValidProjectTypes[idx],
		OpenEditor: openEditor,
		Tasks:      tasks,
	}, nil
}
