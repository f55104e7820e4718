package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yvolo/yvolo/internal/domain"
)

const historyFile = "history.json"

// FileHistory implements domain.ScaffoldHistory as a JSON array stored in
// the user data folder.
type FileHistory struct {
	path string
}

func New(userDataDir string) *FileHistory {
	return &FileHistory{path: filepath.Join(userDataDir, historyFile)}
}

// Path returns the backing file.
func (h *FileHistory) Path() string {
	return h.path
}

func (h *FileHistory) Save(entry domain.ScaffoldEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("creating history folder: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	return os.WriteFile(h.path, data, 0644)
}

func (h *FileHistory) Load() ([]domain.ScaffoldEntry, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScaffoldEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", h.path, err)
	}

	return entries, nil
}
