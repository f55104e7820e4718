package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yvolo/yvolo/internal/adapters/outbound/tui"
	"github.com/yvolo/yvolo/internal/domain"
	"golang.org/x/text/language"
)

func TestRenderMenu_ShowsNameAndLabels(t *testing.T) {
	cfg := domain.DefaultAppConfig()
	cfg.AppName = "mi-app"
	cfg.Labels[domain.LabelOpenChat] = "Open chat"

	output := tui.RenderMenu(cfg)
	assert.Contains(t, output, "mi-app")
	assert.Contains(t, output, "Open chat")
	assert.Contains(t, output, "Nuevo Proyecto")
	assert.Contains(t, output, "yvolo new")
	assert.Contains(t, output, "yvolo chat")
}

func TestRenderMenu_MissingLabelFallsBack(t *testing.T) {
	output := tui.RenderMenu(domain.AppConfig{AppName: "x"})
	assert.Contains(t, output, "Procesar Ideas")
}

func TestRenderResult_Success(t *testing.T) {
	output := tui.RenderResult(domain.ScaffoldResult{
		Success: true,
		Message: "project created: /p/demo",
		Dir:     "/p/demo",
		RepoURL: "https://github.com/me/demo.git",
		Files:   []string{"promp_maestro.txt", "hoja_de_ruta.txt"},
	})
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "project created: /p/demo")
	assert.Contains(t, output, "https://github.com/me/demo.git")
	assert.Contains(t, output, "hoja_de_ruta.txt")
	assert.NotContains(t, output, "no remote repository")
}

func TestRenderResult_SuccessWithoutRemote(t *testing.T) {
	output := tui.RenderResult(domain.ScaffoldResult{Success: true, Message: "ok", Dir: "/p/demo"})
	assert.Contains(t, output, "no remote repository")
}

func TestRenderResult_Failure(t *testing.T) {
	output := tui.RenderResult(domain.ScaffoldResult{Message: "project already exists: /p/demo"})
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "already exists")
	assert.NotContains(t, output, "no remote repository")
}

func TestRenderAction(t *testing.T) {
	assert.Contains(t, tui.RenderAction(domain.ActionResult{Success: true, Message: "copied"}), "✓")
	assert.Contains(t, tui.RenderAction(domain.ActionResult{Message: "no files to copy"}), "✗")
}

func TestRenderRecord(t *testing.T) {
	rec := &domain.ProjectRecord{
		Fields: []domain.Field{{Key: "name_project", Value: "demo"}, {Key: "repo_git", Value: ""}},
		Tasks: []domain.Task{{
			Description: "login", Critical: "No critica", Implemented: "No implementada", Dependencies: "Ninguna",
		}},
	}
	output := tui.RenderRecord(rec, language.Spanish)
	assert.Contains(t, output, "name_project")
	assert.Contains(t, output, "demo")
	assert.Contains(t, output, "#Tareas")
	assert.Contains(t, output, "1 tasks")
	assert.Contains(t, output, "login")
	assert.Contains(t, output, "Ninguna")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil, language.English), "no projects")
}

func TestRenderHistory_Entries(t *testing.T) {
	entries := []domain.ScaffoldEntry{
		{Name: "demo", Dir: "/p/demo", Type: domain.ProjectTypeFlask, Tasks: []string{"a"}, CreatedAt: time.Now()},
		{Name: "other", Dir: "/p/other", RepoURL: "https://github.com/me/other.git", CreatedAt: time.Now()},
	}
	output := tui.RenderHistory(entries, language.English)
	assert.Contains(t, output, "2 projects")
	assert.Contains(t, output, "demo")
	assert.Contains(t, output, "Flask")
	assert.Contains(t, output, "no remote")
	assert.Contains(t, output, "https://github.com/me/other.git")
}
