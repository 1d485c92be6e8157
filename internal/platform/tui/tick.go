// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the loop that scheduled it; ticks from an older loop are
// dropped, which is how starting a new loop cancels the previous one.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// generations hands out loop generations. The counter is shared by every
// model in the process, so a tick left over from a game the player just
// left can never match the generation of the game started after it.
var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// one frame at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
