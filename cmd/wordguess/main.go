// Package main provides the CLI entrypoint for wordguess.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordguess/internal/config"
	"github.com/verte-zerg/wordguess/internal/game"
	"github.com/verte-zerg/wordguess/internal/model"
	"github.com/verte-zerg/wordguess/internal/secret"
	"github.com/verte-zerg/wordguess/internal/tui"
	"github.com/verte-zerg/wordguess/internal/wordlist"
)

const (
	defaultWordsFile = "words_input.txt"
	defaultMask      = "*"
)

var (
	gameWordsFile string
	gameMaxWords  int
	gameMask      string
	gameSeed      int64
	gameTUI       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordguess",
		Short:         "Guess the secret word",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameWordsFile, "words-file", defaultWordsFile, "file with one candidate word per line")
	rootCmd.Flags().IntVar(&gameMaxWords, "max-words", wordlist.DefaultMaxWords, "maximum number of words read from the file")
	rootCmd.Flags().StringVar(&gameMask, "mask", defaultMask, "character shown for hidden positions")
	rootCmd.Flags().Int64Var(&gameSeed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.Flags().BoolVar(&gameTUI, "tui", false, "play in the interactive terminal UI")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words-file", &gameWordsFile, fileCfg.Game.WordsFile)
	applyIntConfig(cmd, "max-words", &gameMaxWords, fileCfg.Game.MaxWords)
	applyStringConfig(cmd, "mask", &gameMask, fileCfg.Game.Mask)
	applyBoolConfig(cmd, "tui", &gameTUI, fileCfg.Game.TUI)

	cfg := model.Config{
		WordsFile: gameWordsFile,
		MaxWords:  gameMaxWords,
		Mask:      gameMask,
		Seed:      gameSeed,
		TUI:       gameTUI,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if cfg.TUI && !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("--tui requires an interactive terminal")
	}

	return runGame(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runGame plays one game. Word list problems end the game early with a
// message but are not command failures.
func runGame(cfg model.Config, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%s\n\n", game.Banner); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	words, err := wordlist.LoadWords(cfg.WordsFile, cfg.MaxWords)
	if err != nil {
		return printLine(out, wordListLoadMessage(cfg.WordsFile, err))
	}
	if len(words) == 0 {
		return printLine(out, "No words found in the file")
	}

	sel := secret.New()
	if cfg.Seed != 0 {
		sel = secret.NewWithSeed(cfg.Seed)
	}
	word, err := sel.Pick(words)
	if err != nil {
		return printLine(out, err.Error())
	}

	sess := game.NewSession(word, cfg.MaskRune())
	if cfg.TUI {
		program := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		// The alternate screen is gone; leave the result on the terminal.
		return printLine(out, sess.FinalMessage())
	}

	if _, err := game.Play(in, out, sess); err != nil {
		logErrf("%v\n", err)
	}
	return nil
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
	if err := writeDefaultConfig(path); err != nil {
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

// writeDefaultConfig creates the config file from the template unless it exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordguess configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# words-file = %q   # File with one candidate word per line
# max-words = %d              # Maximum number of words read from the file
# mask = %q                  # Character shown for hidden positions
# tui = false                  # Play in the interactive terminal UI
`,
		defaultWordsFile,
		wordlist.DefaultMaxWords,
		defaultMask,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.WordsFile) == "" {
		return fmt.Errorf("--words-file must not be empty")
	}
	if cfg.MaxWords <= 0 {
		return fmt.Errorf("--max-words must be > 0")
	}
	if utf8.RuneCountInString(cfg.Mask) != 1 {
		return fmt.Errorf("--mask must be a single character")
	}
	return nil
}

func wordListLoadMessage(path string, err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("word list not found: %s", path)
	}
	return fmt.Sprintf("failed to read word list %s: %v", path, err)
}

func printLine(out io.Writer, line string) error {
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
