// Package tui provides the Bubble Tea integration for sigep: the interactive
// scene viewer, its key bindings, styled rendering, and an SSH server that
// hands each session its own viewer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the spin animation. Gen identifies the spin
// that scheduled it; ticks from an earlier spin are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
