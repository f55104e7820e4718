package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	configURI  = "yvolo://config"
	historyURI = "yvolo://history"
)

func registerResources(s *server.MCPServer, svc Services) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Resolved application configuration"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(svc),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Scaffold History",
			mcplib.WithResourceDescription("Projects created so far, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(svc),
	)
}

func handleConfigResource(svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(configURI, svc.Config)
	}
}

func handleHistoryResource(svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		if svc.History == nil {
			return jsonResource(historyURI, []any{})
		}
		entries, err := svc.History.Load()
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			return jsonResource(historyURI, []any{})
		}
		return jsonResource(historyURI, entries)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
