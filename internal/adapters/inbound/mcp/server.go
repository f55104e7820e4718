package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/yvolo/yvolo/internal/application"
	"github.com/yvolo/yvolo/internal/domain"
)

// Services are the application entry points exposed over MCP.
type Services struct {
	Scaffold *application.ScaffoldService
	Roadmaps *application.RoadmapService
	Chat     *application.ChatService
	History  domain.ScaffoldHistory
	Config   domain.AppConfig
	Version  string
}

// NewYvoloMCPServer creates an MCP server with every yvolo tool and resource
// registered.
func NewYvoloMCPServer(svc Services) *server.MCPServer {
	version := svc.Version
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer(
		"yvolo",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
