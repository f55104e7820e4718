package cli

import (
	mcpadapter "github.com/yvolo/yvolo/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the yvolo MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start yvolo MCP server (stdio)",
		Long:  "Start the yvolo MCP server using stdio transport so AI assistants can create projects and read roadmaps.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := mcpadapter.NewYvoloMCPServer(mcpadapter.Services{
				Scaffold: a.scaffold,
				Roadmaps: a.roadmaps,
				Chat:     a.chat,
				History:  a.history,
				Config:   a.cfg,
				Version:  version,
			})
			return server.ServeStdio(s)
		},
	}
}
