// Package main provides the CLI entrypoint for typedrill.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typedrill/internal/config"
	"github.com/verte-zerg/typedrill/internal/game"
	"github.com/verte-zerg/typedrill/internal/generator"
	"github.com/verte-zerg/typedrill/internal/layout"
	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/render"
	"github.com/verte-zerg/typedrill/internal/session"
	"github.com/verte-zerg/typedrill/internal/stats"
	"github.com/verte-zerg/typedrill/internal/terminal"
	"github.com/verte-zerg/typedrill/internal/tui"
	"github.com/verte-zerg/typedrill/internal/wordlist"
)

// helpRows is the footer line the tea backend draws under the grid.
const helpRows = 1

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typedrill",
		Short:         "Terminal typing drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runRoundCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runRoundCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.DefaultConfigPath())
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	wordPath := config.ResolveWordListPath(cfg.WordListPath, cfg.Lang, cwd)
	list, err := wordlist.LoadWords(wordPath, wordlist.MaxWordLen, wordlist.FilterForLang(cfg.Lang))
	if err != nil {
		return wordListLoadError(cfg.Lang, wordPath, err)
	}
	if list.Truncated > 0 {
		logErrf("warning: truncated %d words longer than %d characters in %s\n", list.Truncated, wordlist.MaxWordLen, wordPath)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdin and stdout must be a terminal")
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}

	words := generator.New().Generate(list.Words, cfg.Words, cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet))
	text, err := layout.JoinWords(words)
	if err != nil {
		return fmt.Errorf("failed to build text: %w", err)
	}
	sess, err := session.New(text, nil)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	styles, err := render.NewStyleTable(cfg.Theme)
	if err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	if cfg.Backend == config.BackendTea {
		rows -= helpRows
	}
	spec, err := layout.Fit(cols, rows, cfg.Width, sess.Len(), render.StatusRows, cfg.OriginRow, cfg.OriginCol)
	if err != nil {
		return fmt.Errorf("failed to fit text: %w", err)
	}

	var result game.Result
	switch cfg.Backend {
	case config.BackendTea:
		result, err = runTea(spec, styles, sess, cols, rows)
	default:
		result, err = runCell(spec, styles, sess)
	}
	if err != nil {
		return err
	}
	if result.Aborted {
		return nil
	}
	if err := stats.RenderReport(cmd.OutOrStdout(), result.Metrics, sess); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func loadConfig(path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := fileCfg.Apply(config.Defaults())
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func runCell(spec layout.Spec, styles render.StyleTable, sess *session.Session) (game.Result, error) {
	screen, err := terminal.Acquire()
	if err != nil {
		return game.Result{}, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Release()

	round := game.NewRound(sess, render.NewDriver(spec, styles, screen), nil)
	return game.Run(screen, round, screen.Show)
}

func runTea(spec layout.Spec, styles render.StyleTable, sess *session.Session, cols, rows int) (game.Result, error) {
	grid := render.NewGrid(rows, cols)
	round := game.NewRound(sess, render.NewDriver(spec, styles, grid), nil)
	m := tui.NewModel(round, grid)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return game.Result{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Result(), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the default template unless path already exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List installed wordlist languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	wordlistDir := config.DefaultWordListDir()
	langs, err := listLangs(wordlistDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logErrf("No wordlists found. Add <lang>.txt files to %s\n", wordlistDir)
			return fmt.Errorf("wordlist directory does not exist")
		}
		return err
	}
	if len(langs) == 0 {
		logErrf("No wordlists found. Add <lang>.txt files to %s\n", wordlistDir)
		return fmt.Errorf("no wordlists found")
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// listLangs returns the sorted language codes of the .txt lists in dir.
func listLangs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(langs)
	return langs, nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
	}
	if errors.Is(err, os.ErrNotExist) {
		lines = append(lines,
			fmt.Sprintf("language %q not found", lang),
			"Run: typedrill langs",
			fmt.Sprintf("Or place a %s in the current directory", config.LocalWordListPath),
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
