// arcade is a terminal arcade with two games: Typing Rush, a timed
// word-typing round, and Blaster Runner, a jump-and-shoot endless runner.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--debug         - Write a debug log to ~/.arcade/debug.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rush-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/rush-arcade/internal/games/runner"
	_ "github.com/vovakirdan/rush-arcade/internal/games/typing"
)

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagDebug bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Typing Rush and Blaster Runner in your terminal",
	Long: `A terminal arcade with two games:

  typing   - Typing Rush: type as many words as you can in 10 seconds
  runner   - Blaster Runner: jump over obstacles or shoot them for bonus points

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play runner
  arcade play typing --seed 42
  arcade menu
  arcade serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return validateFPS(flagFPS)
	},
}

// validateFPS rejects tick rates the simulation cannot run at.
func validateFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("invalid argument %d for \"--fps\" flag: must be a positive tick rate", fps)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.arcade/debug.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newTerminalLogger returns the logger for commands that own the terminal.
// The alternate screen leaves no room for log lines, so output goes to a
// file with --debug and is discarded otherwise. The returned cleanup must
// be called on exit.
func newTerminalLogger() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "arcade",
	})
	return logger, func() { _ = f.Close() }, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
