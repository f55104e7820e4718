package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yvolo/yvolo/internal/domain"
)

// RoadmapService reads the roadmap of an existing project.
type RoadmapService struct {
	workspace   domain.Workspace
	projectsDir string
}

func NewRoadmapService(workspace domain.Workspace, projectsDir string) *RoadmapService {
	return &RoadmapService{workspace: workspace, projectsDir: projectsDir}
}

// ProjectDir resolves ref to a project folder. A bare name is sanitized and
// looked up under the projects folder; anything with a path separator is
// used as given.
func (s *RoadmapService) ProjectDir(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if filepath.IsAbs(ref) || strings.ContainsAny(ref, `/\`) || ref == "." {
		return filepath.Clean(ref), nil
	}
	name := domain.SanitizeName(ref)
	if name == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidName, ref)
	}
	return filepath.Join(s.projectsDir, name), nil
}

// Read parses the roadmap file of the referenced project.
func (s *RoadmapService) Read(ref string) (*domain.ProjectRecord, error) {
	dir, err := s.ProjectDir(ref)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, domain.RoadmapFileName)
	text, err := s.workspace.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roadmap: %w", err)
	}
	rec, err := domain.ParseRoadmap(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rec, nil
}
