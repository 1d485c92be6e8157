package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leave a game with Esc (after game over or while paused in Blaster Runner)
to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, cleanup, err := newTerminalLogger()
	if err != nil {
		fail("%v", err)
	}
	defer cleanup()
	config.SetLogger(logger)

	if err := tui.RunSession(runtimeConfig(), logger); err != nil {
		cleanup()
		fail("%v", err)
	}
}
