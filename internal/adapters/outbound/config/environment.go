package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// packagedBuild marks distributed binaries. Release builds set it with
// -ldflags "-X github.com/yvolo/yvolo/internal/adapters/outbound/config.packagedBuild=true".
var packagedBuild = "false"

const (
	envPrefix = "YVOLO"
	appName   = "yvolo"
)

// Environment holds the process-level settings that locate the application,
// its user data and the projects it creates.
type Environment struct {
	Packaged    bool   `json:"packaged" yaml:"packaged"`
	AppDir      string `json:"app_dir" yaml:"app_dir"`
	UserDataDir string `json:"userdata_dir" yaml:"userdata_dir"`
	ProjectsDir string `json:"projects_dir" yaml:"projects_dir"`
	BackupsDir  string `json:"backups_dir" yaml:"backups_dir"`
	Editor      string `json:"editor" yaml:"editor"`
	GHBinary    string `json:"gh" yaml:"gh"`
}

// LoadEnvironment reads YVOLO_* variables and fills in platform defaults.
//
//	YVOLO_PACKAGED      run as a distributed binary (default from the build)
//	YVOLO_HOME          application root when not packaged (default: working directory)
//	YVOLO_USERDATA_DIR  per-user data (default: %APPDATA%/yvolo, else ~/.yvolo)
//	YVOLO_PROJECTS_DIR  where projects are created (default: ~/Desktop/proyectos)
//	YVOLO_BACKUPS_DIR   folder recorded in backup paths (default: Desktop/backups)
//	YVOLO_EDITOR        editor command (default: code)
//	YVOLO_GH            GitHub CLI binary (default: gh)
func LoadEnvironment() (Environment, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("packaged", packagedBuild == "true")
	v.SetDefault("backups_dir", filepath.Join("Desktop", "backups"))
	v.SetDefault("editor", "code")
	v.SetDefault("gh", "gh")
	if err := v.BindEnv("appdata", "APPDATA"); err != nil {
		return Environment{}, fmt.Errorf("binding APPDATA: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, fmt.Errorf("resolving home directory: %w", err)
	}

	env := Environment{
		Packaged:    v.GetBool("packaged"),
		UserDataDir: v.GetString("userdata_dir"),
		ProjectsDir: v.GetString("projects_dir"),
		BackupsDir:  v.GetString("backups_dir"),
		Editor:      v.GetString("editor"),
		GHBinary:    v.GetString("gh"),
	}

	env.AppDir, err = appDir(env.Packaged, v.GetString("home"))
	if err != nil {
		return Environment{}, err
	}

	if env.UserDataDir == "" {
		if appdata := v.GetString("appdata"); appdata != "" {
			env.UserDataDir = filepath.Join(appdata, appName)
		} else {
			env.UserDataDir = filepath.Join(home, "."+appName)
		}
	}
	if env.ProjectsDir == "" {
		env.ProjectsDir = filepath.Join(home, "Desktop", "proyectos")
	}
	return env, nil
}

// appDir is the executable's directory for packaged runs, otherwise the
// configured home or the working directory.
func appDir(packaged bool, override string) (string, error) {
	if packaged {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locating executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe), nil
	}
	if override != "" {
		return filepath.Abs(override)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}
