package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
	"github.com/yvolo/yvolo/internal/domain"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Copy the roadmap and master prompt to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			res := a.chat.OpenChat(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAction(res))
			if !res.Success {
				return errReported
			}
			return nil
		},
	}
}

func newIdeasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ideas",
		Short: "Process ideas (not implemented yet)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAction(domain.ActionResult{
				Success: true,
				Message: "not implemented yet",
			}))
			return nil
		},
	}
}
