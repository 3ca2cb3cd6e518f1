// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Epoch identifies which run of the
// loop scheduled it, so ticks left over from before a pause or restart can
// be dropped instead of double-stepping the game.
type TickMsg struct {
	Time  time.Time
	Epoch int
}

// tickCmd returns a Bubble Tea command that sends the next tick.
func tickCmd(tickRate, epoch int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Epoch: epoch}
	})
}
