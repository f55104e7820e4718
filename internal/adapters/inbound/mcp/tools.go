package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yvolo/yvolo/internal/domain"
)

func registerTools(s *server.MCPServer, svc Services) {
	s.AddTool(
		mcplib.NewTool("yvolo_create_project",
			mcplib.WithDescription("Scaffold a new project folder with the master prompt, a patched roadmap, a git repository and a type-specific stub"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Project name; whitespace becomes underscores and other symbols are dropped"),
			),
			mcplib.WithString("type",
				mcplib.Description("Project type: Empty, Python or Flask (default: Empty); other values add no stub"),
			),
			mcplib.WithBoolean("open_editor",
				mcplib.Description("Open the new project in the configured editor (default: false)"),
			),
			mcplib.WithArray("tasks",
				mcplib.Description("Task descriptions added under #Tareas, in order"),
				mcplib.Items(map[string]any{"type": "string"}),
			),
		),
		handleCreateProject(svc),
	)

	s.AddTool(
		mcplib.NewTool("yvolo_read_roadmap",
			mcplib.WithDescription("Returns the parsed roadmap (header fields and tasks) of an existing project as JSON"),
			mcplib.WithString("project",
				mcplib.Required(),
				mcplib.Description("Project name under the projects folder, or a path to the project folder"),
			),
		),
		handleReadRoadmap(svc),
	)

	s.AddTool(
		mcplib.NewTool("yvolo_get_config",
			mcplib.WithDescription("Returns the resolved application configuration (app name, language, labels)"),
		),
		handleGetConfig(svc),
	)

	s.AddTool(
		mcplib.NewTool("yvolo_open_chat",
			mcplib.WithDescription("Copies the roadmap template and the master prompt to the system clipboard"),
		),
		handleOpenChat(svc),
	)
}

func handleCreateProject(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		typeName, _ := args["type"].(string)
		openEditor, _ := args["open_editor"].(bool)

		req := domain.ProjectRequest{
			Name:       name,
			Type:       domain.ParseProjectType(typeName),
			OpenEditor: openEditor,
			Tasks:      stringItems(args["tasks"]),
		}

		res := svc.Scaffold.CreateProject(ctx, req)
		if !res.Success {
			return errorResult(res.Message), nil
		}
		return jsonResult(res)
	}
}

func handleReadRoadmap(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rec, err := svc.Roadmaps.Read(project)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rec)
	}
}

func handleGetConfig(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Config)
	}
}

func handleOpenChat(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		res := svc.Chat.OpenChat(ctx)
		if !res.Success {
			return errorResult(res.Message), nil
		}
		return textResult(res.Message), nil
	}
}

// stringItems keeps the string elements of a JSON array argument.
func stringItems(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// jsonResult marshals v to indented JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
