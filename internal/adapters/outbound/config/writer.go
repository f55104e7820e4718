package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yvolo/yvolo/internal/domain"
)

// SettingsPath is where source runs and `yvolo init` keep settings.json.
func SettingsPath(appDir string) string {
	return filepath.Join(appDir, ConfigDirName, SettingsFileName)
}

// WriteSettings stores cfg as indented JSON at path. It reports false
// without writing when the file exists and force is not set.
func WriteSettings(path string, cfg domain.AppConfig, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
