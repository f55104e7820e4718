package application_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yvolo/yvolo/internal/application"
	"github.com/yvolo/yvolo/internal/domain"
)

func TestRoadmapService_ProjectDir(t *testing.T) {
	svc := application.NewRoadmapService(newMemWorkspace(), "/projects")

	dir, err := svc.ProjectDir("  Mi App  ")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/projects", "Mi_App"), dir)

	dir, err = svc.ProjectDir(filepath.Join("elsewhere", "demo"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("elsewhere", "demo"), dir)

	_, err = svc.ProjectDir("@@@")
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestRoadmapService_ReadsScaffoldedProject(t *testing.T) {
	f := newScaffoldFixture()
	res := f.service().CreateProject(context.Background(), domain.ProjectRequest{
		Name:  "demo",
		Type:  domain.ProjectTypeEmpty,
		Tasks: []string{"first", "second"},
	})
	require.True(t, res.Success, res.Message)

	rec, err := application.NewRoadmapService(f.ws, f.base).Read("demo")
	require.NoError(t, err)

	name, ok := rec.Field(domain.FieldNameProject)
	assert.True(t, ok)
	assert.Equal(t, "demo", name)
	require.Len(t, rec.Tasks, 2)
	assert.Equal(t, "first", rec.Tasks[0].Description)
	assert.Equal(t, "Ninguna", rec.Tasks[1].Dependencies)
}

func TestRoadmapService_MissingProject(t *testing.T) {
	_, err := application.NewRoadmapService(newMemWorkspace(), "/projects").Read("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRoadmapService_MalformedRoadmap(t *testing.T) {
	ws := newMemWorkspace()
	require.NoError(t, ws.WriteFile(filepath.Join("/projects", "demo", domain.RoadmapFileName), "no marker here"))

	_, err := application.NewRoadmapService(ws, "/projects").Read("demo")
	var shapeErr *domain.TemplateShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
