// Package workspace performs scaffold writes on the local filesystem.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// OS implements domain.Workspace with the os package.
type OS struct{}

func New() *OS {
	return &OS{}
}

func (w *OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateDir creates missing parents, then path itself exclusively so that a
// concurrent scaffold of the same name fails instead of sharing the folder.
func (w *OS) CreateDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", path, err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content as UTF-8 text, creating parent folders.
func (w *OS) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (w *OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
