package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/render"
)

const (
	DefaultLang     = "en"
	DefaultWords    = 25
	MaxWords        = 200
	DefaultPunctSet = ".,!?;:"

	BackendCell = "cell"
	BackendTea  = "tea"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Round   RoundConfig   `toml:"round"`
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
}

// RoundConfig maps text generation settings.
type RoundConfig struct {
	Lang     *string  `toml:"lang"`
	Words    *int     `toml:"words"`
	WordList *string  `toml:"wordlist"`
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// DisplayConfig maps layout and backend settings.
type DisplayConfig struct {
	Backend   *string `toml:"backend"`
	Width     *int    `toml:"width"`
	OriginRow *int    `toml:"origin-row"`
	OriginCol *int    `toml:"origin-col"`
}

// ThemeConfig maps per-style colours.
type ThemeConfig struct {
	Untyped   *string `toml:"untyped"`
	Correct   *string `toml:"correct"`
	Incorrect *string `toml:"incorrect"`
	Cursor    *string `toml:"cursor"`
	Status    *string `toml:"status"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Defaults returns the compiled-in round configuration.
func Defaults() model.Config {
	return model.Config{
		Lang:     DefaultLang,
		Words:    DefaultWords,
		PunctSet: DefaultPunctSet,
		Backend:  BackendCell,
		Theme:    render.DefaultTheme(),
	}
}

// Apply overlays the values set in f onto cfg.
func (f FileConfig) Apply(cfg model.Config) model.Config {
	setString(&cfg.Lang, f.Round.Lang)
	setInt(&cfg.Words, f.Round.Words)
	setString(&cfg.WordListPath, f.Round.WordList)
	setFloat(&cfg.CapsPct, f.Round.CapsPct)
	setFloat(&cfg.PunctPct, f.Round.PunctPct)
	setString(&cfg.PunctSet, f.Round.PunctSet)

	setString(&cfg.Backend, f.Display.Backend)
	setInt(&cfg.Width, f.Display.Width)
	if f.Display.OriginRow != nil {
		v := *f.Display.OriginRow
		cfg.OriginRow = &v
	}
	if f.Display.OriginCol != nil {
		v := *f.Display.OriginCol
		cfg.OriginCol = &v
	}

	setString(&cfg.Theme.Untyped, f.Theme.Untyped)
	setString(&cfg.Theme.Correct, f.Theme.Correct)
	setString(&cfg.Theme.Incorrect, f.Theme.Incorrect)
	setString(&cfg.Theme.Cursor, f.Theme.Cursor)
	setString(&cfg.Theme.Status, f.Theme.Status)
	return cfg
}

// Validate checks value ranges, the backend name and theme colours.
func Validate(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("lang must not be empty")
	}
	if cfg.Words < 1 || cfg.Words > MaxWords {
		return fmt.Errorf("words must be between 1 and %d", MaxWords)
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("punct-set must not be empty when punct is set")
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width must be >= 0")
	}
	if cfg.OriginRow != nil && *cfg.OriginRow < 0 {
		return fmt.Errorf("origin-row must be >= 0")
	}
	if cfg.OriginCol != nil && *cfg.OriginCol < 0 {
		return fmt.Errorf("origin-col must be >= 0")
	}
	switch cfg.Backend {
	case BackendCell, BackendTea:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendCell, BackendTea, cfg.Backend)
	}
	if _, err := render.NewStyleTable(cfg.Theme); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}
	return nil
}

// DefaultTemplate returns the commented config written by the config command.
func DefaultTemplate() string {
	theme := render.DefaultTheme()
	return fmt.Sprintf(`# typedrill configuration
# Uncomment a value to enable it.

[round]
# lang = %q               # Language code of the word list
# words = %d              # Words per round (1-%d)
# wordlist = ""           # Explicit word list path
# caps = 0.0              # Probability of capitalized first letter (0-1)
# punct = 0.0             # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set

[display]
# backend = %q          # "cell" or "tea"
# width = 0               # Columns per row, 0 for 70%% of the terminal
# origin-row = 0          # Top row of the text, centred when unset
# origin-col = 0          # Left column of the text, centred when unset

[theme]
# untyped = %q
# correct = %q
# incorrect = %q
# cursor = %q
# status = %q
`,
		DefaultLang,
		DefaultWords,
		MaxWords,
		DefaultPunctSet,
		BackendCell,
		theme.Untyped,
		theme.Correct,
		theme.Incorrect,
		theme.Cursor,
		theme.Status,
	)
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func setInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}

func setFloat(target, value *float64) {
	if value != nil {
		*target = *value
	}
}
