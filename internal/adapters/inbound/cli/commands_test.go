package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yvolo/yvolo/internal/domain"
	"gopkg.in/yaml.v3"
)

func TestInitCmd_CreatesFiles(t *testing.T) {
	env := setupEnv(t)

	out, err := run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	settings := filepath.Join(env.appDir, "config", "settings.json")
	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"btn_open_chat": "Abrir Chat"`)
	assert.FileExists(t, filepath.Join(env.appDir, domain.MasterPromptFileName))
	assert.FileExists(t, filepath.Join(env.appDir, domain.RoadmapFileName))
}

func TestInitCmd_KeepsExistingFiles(t *testing.T) {
	env := setupEnv(t)
	_, err := run(t, "", "init")
	require.NoError(t, err)

	prompt := filepath.Join(env.appDir, domain.MasterPromptFileName)
	require.NoError(t, os.WriteFile(prompt, []byte("mine"), 0644))

	out, err := run(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "use --force")
	assert.NotContains(t, out, "Created")
	data, _ := os.ReadFile(prompt)
	assert.Equal(t, "mine", string(data))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	env := setupEnv(t)
	_, err := run(t, "", "init")
	require.NoError(t, err)

	prompt := filepath.Join(env.appDir, domain.MasterPromptFileName)
	require.NoError(t, os.WriteFile(prompt, []byte("mine"), 0644))

	_, err = run(t, "", "init", "--force")
	require.NoError(t, err)
	data, _ := os.ReadFile(prompt)
	assert.NotEqual(t, "mine", string(data))
}

func TestNewCmd_ReadsAnswers(t *testing.T) {
	env := setupEnv(t)
	_, err := run(t, "", "init")
	require.NoError(t, err)

	out, err := run(t, "\nmy app\n2\nn\nfirst task\nsecond task\n\n", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "project created")

	dir := filepath.Join(env.projectsDir, "my_app")
	assert.FileExists(t, filepath.Join(dir, "src", "main.py"))
	data, err := os.ReadFile(filepath.Join(dir, domain.RoadmapFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- Descripción: first task\n")
	assert.Contains(t, string(data), "- Descripción: second task\n")
}

func TestNewCmd_DefaultsOnShortInput(t *testing.T) {
	env := setupEnv(t)
	_, err := run(t, "", "init")
	require.NoError(t, err)

	_, err = run(t, "solo", "new")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(env.projectsDir, "solo"))
	assert.NoFileExists(t, filepath.Join(env.projectsDir, "solo", "app.py"))
}

func TestNewCmd_NoNameFails(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "\n\n", "new")
	assert.Error(t, err)
}

func TestIdeasCmd(t *testing.T) {
	out, err := run(t, "", "ideas")
	require.NoError(t, err)
	assert.Contains(t, out, "not implemented yet")
}

func TestChatCmd_NoTemplates(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "chat")
	assert.Error(t, err)
	assert.Contains(t, out, "no files to copy")
}

func TestShowCmd_Formats(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "", "init")
	require.NoError(t, err)
	_, err = run(t, "", "--create", "demo", "--task", "write docs")
	require.NoError(t, err)

	out, err := run(t, "", "show", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "name_project")
	assert.Contains(t, out, "write docs")

	out, err = run(t, "", "show", "demo", "--format", "json")
	require.NoError(t, err)
	var rec domain.ProjectRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Len(t, rec.Tasks, 1)
	assert.Equal(t, "write docs", rec.Tasks[0].Description)

	out, err = run(t, "", "show", "demo", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML domain.ProjectRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, rec, fromYAML)
}

func TestShowCmd_Errors(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "", "show", "ghost")
	assert.Error(t, err)

	_, err = run(t, "", "show", "ghost", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestHistoryCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no projects")

	out, err = run(t, "", "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	_, err = run(t, "", "init")
	require.NoError(t, err)
	_, err = run(t, "", "--create", "demo", "--type", "python")
	require.NoError(t, err)

	out, err = run(t, "", "history", "--json")
	require.NoError(t, err)
	var entries []domain.ScaffoldEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "demo", entries[0].Name)
	assert.Equal(t, domain.ProjectTypePython, entries[0].Type)
}

func TestConfigCmd(t *testing.T) {
	env := setupEnv(t)
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "source: built-in default")
	assert.Contains(t, out, "app_name: yvolo")

	_, err = run(t, "", "init")
	require.NoError(t, err)

	out, err = run(t, "", "config", "--format", "json")
	require.NoError(t, err)
	var view struct {
		Source   string           `json:"source"`
		Settings domain.AppConfig `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, filepath.Join(env.appDir, "config", "settings.json"), view.Source)
	assert.Equal(t, domain.DefaultAppConfig(), view.Settings)
}
