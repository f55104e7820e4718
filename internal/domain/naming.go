package domain

import (
	"regexp"
	"strings"
)

var disallowedChars = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)

// SanitizeName turns a free-form project name into a filesystem-safe identifier.
// Runs of Unicode whitespace become a single underscore, characters outside [A-Za-z0-9_.-]
// are dropped, and leading/trailing separators are trimmed. An empty result
// means the name is unusable.
func SanitizeName(raw string) string {
	name := strings.Join(strings.Fields(raw), "_")
	name = disallowedChars.ReplaceAllString(name, "")
	return strings.Trim(name, "_.-")
}
