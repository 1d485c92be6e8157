package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rush-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

// controls summarizes how each game is played.
var controls = map[string]string{
	"runner": "space jump, a shoot, p pause, r restart",
	"typing": "enter start, type the word shown",
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "CONTROLS")
	for _, g := range games {
		t.Row(g.ID, g.Title, controls[g.ID])
	}

	fmt.Println("Available games:")
	fmt.Println(t.Render())
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
