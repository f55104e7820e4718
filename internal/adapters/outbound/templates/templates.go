// Package templates reads the master prompt and roadmap templates from the
// application root and installs the built-in copies.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yvolo/yvolo/internal/domain"
)

//go:embed defaults/*.txt
var defaults embed.FS

// FileSource implements domain.TemplateSource over files in a directory.
type FileSource struct {
	root string
}

func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

func (s *FileSource) MasterPrompt() (string, error) {
	return s.read(domain.MasterPromptFileName)
}

func (s *FileSource) Roadmap() (string, error) {
	return s.read(domain.RoadmapFileName)
}

// Path returns where the named template is looked up.
func (s *FileSource) Path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *FileSource) read(name string) (string, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateMissing, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Default returns the built-in copy of a template.
func Default(name string) (string, error) {
	data, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: built-in %s", domain.ErrTemplateMissing, name)
	}
	return string(data), nil
}

// InstallResult lists what Install wrote and what it left alone.
type InstallResult struct {
	Written []string
	Skipped []string
}

// Install writes the built-in templates into root. Existing files are kept
// unless force is set.
func Install(root string, force bool) (InstallResult, error) {
	var res InstallResult
	if err := os.MkdirAll(root, 0755); err != nil {
		return res, fmt.Errorf("creating %s: %w", root, err)
	}
	for _, name := range []string{domain.MasterPromptFileName, domain.RoadmapFileName} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil && !force {
			res.Skipped = append(res.Skipped, path)
			continue
		}
		content, err := Default(name)
		if err != nil {
			return res, err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return res, fmt.Errorf("writing %s: %w", path, err)
		}
		res.Written = append(res.Written, path)
	}
	return res, nil
}
