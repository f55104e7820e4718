package domain

import (
	"maps"

	"golang.org/x/text/language"
)

// Label keys every resolved configuration carries.
const (
	LabelOpenChat     = "btn_open_chat"
	LabelCloseChat    = "btn_close_chat"
	LabelProcessIdeas = "btn_process_ideas"
	LabelNewProject   = "btn_new_project"
)

// LabelKeys lists the known label keys in display order.
var LabelKeys = []string{
	LabelOpenChat,
	LabelCloseChat,
	LabelProcessIdeas,
	LabelNewProject,
}

// AppConfig is the application configuration read from settings.json.
type AppConfig struct {
	AppName  string            `mapstructure:"app_name" json:"app_name" yaml:"app_name"`
	Language string            `mapstructure:"language" json:"language,omitempty" yaml:"language,omitempty"`
	Labels   map[string]string `mapstructure:"labels" json:"labels" yaml:"labels"`
}

// DefaultAppConfig returns a fresh copy of the built-in configuration.
// Callers may mutate the result freely.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:  "yvolo",
		Language: "es",
		Labels: map[string]string{
			LabelOpenChat:     "Abrir Chat",
			LabelCloseChat:    "Cerrar Chat",
			LabelProcessIdeas: "Procesar Ideas",
			LabelNewProject:   "Nuevo Proyecto",
		},
	}
}

// WithDefaults back-fills a missing app name and any missing label keys from
// the built-in configuration. Present values are never overwritten.
func (c AppConfig) WithDefaults() AppConfig {
	def := DefaultAppConfig()
	out := c.Clone()
	if out.AppName == "" {
		out.AppName = def.AppName
	}
	if out.Labels == nil {
		out.Labels = make(map[string]string, len(def.Labels))
	}
	for _, key := range LabelKeys {
		if _, ok := out.Labels[key]; !ok {
			out.Labels[key] = def.Labels[key]
		}
	}
	return out
}

// Clone returns a deep copy of c.
func (c AppConfig) Clone() AppConfig {
	out := c
	if c.Labels != nil {
		out.Labels = maps.Clone(c.Labels)
	}
	return out
}

// Label returns the display text for key, falling back to the built-in text.
func (c AppConfig) Label(key string) string {
	if v, ok := c.Labels[key]; ok {
		return v
	}
	return DefaultAppConfig().Labels[key]
}

// Tag parses Language as a BCP 47 tag. Unset or malformed values yield Spanish.
func (c AppConfig) Tag() language.Tag {
	if c.Language == "" {
		return language.Spanish
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Spanish
	}
	return tag
}
