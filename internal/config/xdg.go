// Package config provides configuration helpers and TOML parsing.
package config

import (
	"os"
	"path/filepath"
)

const appName = "typedrill"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultWordListPath builds the default word list path for a language.
func DefaultWordListPath(lang string) string {
	return filepath.Join(DefaultWordListDir(), lang+".txt")
}

// DefaultWordListDir returns the default directory for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// LocalWordListPath is checked in the working directory before the XDG list.
const LocalWordListPath = "words.txt"

// ResolveWordListPath picks the word list for cfg: the configured path, then
// words.txt in dir, then the per-language list under the config home.
func ResolveWordListPath(configured, lang, dir string) string {
	if configured != "" {
		return configured
	}
	local := filepath.Join(dir, LocalWordListPath)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return local
	}
	return DefaultWordListPath(lang)
}
