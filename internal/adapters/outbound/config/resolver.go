package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/viper"
	"github.com/yvolo/yvolo/internal/domain"
)

// Names of the settings file and the folder that holds it.
const (
	SettingsFileName = "settings.json"
	ConfigDirName    = "config"
)

//go:embed schema/settings.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("settings.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("settings.schema.json")
	})
	return compiledSchema, compileErr
}

// Resolver loads the application configuration from the first usable
// settings.json among the candidates for the current mode.
type Resolver struct {
	env    Environment
	logger *slog.Logger
}

func NewResolver(env Environment, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{env: env, logger: logger}
}

// Candidates lists settings files in priority order. Source runs only look
// beside the application root; packaged runs also try the binary's folder
// and the per-user data folder.
func (r *Resolver) Candidates() []string {
	primary := filepath.Join(r.env.AppDir, ConfigDirName, SettingsFileName)
	if !r.env.Packaged {
		return []string{primary}
	}
	return []string{
		primary,
		filepath.Join(r.env.AppDir, SettingsFileName),
		filepath.Join(r.env.UserDataDir, SettingsFileName),
	}
}

// Resolve always returns a usable configuration.
func (r *Resolver) Resolve() domain.AppConfig {
	cfg, _ := r.ResolveWithSource()
	return cfg
}

// ResolveWithSource is Resolve plus the path that supplied the values, or ""
// when the built-in default was used.
func (r *Resolver) ResolveWithSource() (domain.AppConfig, string) {
	for _, path := range r.Candidates() {
		cfg, hasName, err := loadSettings(path)
		if err != nil {
			r.logger.Debug("settings candidate skipped", "path", path, "err", err)
			continue
		}
		out := cfg.WithDefaults()
		if hasName {
			// An explicit app_name, even "", is kept as written.
			out.AppName = cfg.AppName
		}
		return out, path
	}
	return domain.DefaultAppConfig(), ""
}

// LoadSettings reads and validates one settings file without back-filling.
func LoadSettings(path string) (domain.AppConfig, error) {
	cfg, _, err := loadSettings(path)
	return cfg, err
}

// loadSettings also reports whether the file names app_name at all.
func loadSettings(path string) (domain.AppConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AppConfig{}, false, err
	}

	schema, err := getSchema()
	if err != nil {
		return domain.AppConfig{}, false, fmt.Errorf("loading schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return domain.AppConfig{}, false, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := schema.Validate(inst); err != nil {
		return domain.AppConfig{}, false, fmt.Errorf("invalid %s: %w", path, err)
	}
	obj, _ := inst.(map[string]any)
	_, hasName := obj["app_name"]

	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return domain.AppConfig{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg domain.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.AppConfig{}, false, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, hasName, nil
}
