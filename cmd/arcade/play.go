package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/games/runner"
	"github.com/vovakirdan/rush-arcade/internal/games/typing"
	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Blaster Runner controls:
  Space/Up/W - Jump
  A          - Shoot (3 second reload)
  P          - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Typing Rush controls:
  Enter      - Start a round
  Letters    - Type the word shown
  Backspace  - Delete
  Esc/Ctrl+C - Quit

Examples:
  arcade play runner
  arcade play typing
  arcade play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, cleanup, err := newTerminalLogger()
	if err != nil {
		fail("%v", err)
	}
	defer cleanup()
	config.SetLogger(logger)

	if err := applyConfigPath(gameID, flagConfig); err != nil {
		cleanup()
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		cleanup()
		fail("running game: %v", err)
	}
}

// applyConfigPath validates a custom config file up front so a bad path
// fails before the terminal is taken over, then hands it to the game.
func applyConfigPath(gameID, path string) error {
	if path == "" {
		return nil
	}

	switch gameID {
	case "runner":
		if _, err := config.LoadRunner(path); err != nil {
			return err
		}
		runner.SetConfigPath(path)
	case "typing":
		if _, err := config.LoadTyping(path); err != nil {
			return err
		}
		typing.SetConfigPath(path)
	default:
		return fmt.Errorf("game %q does not take a config file", gameID)
	}
	return nil
}
