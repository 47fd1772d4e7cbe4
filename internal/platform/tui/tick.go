// Package tui provides the Bubble Tea front end for Killer Emoji.
// It drives the frame loop, maps keys and mouse zones to movement intent,
// and renders the menus, the field and the ranking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one simulation step.
// Gen identifies the frame loop that scheduled it; messages from a stopped
// loop are dropped.
type FrameMsg struct {
	Gen int
	At  time.Time
}

// frameCmd returns a Bubble Tea command that sends the next frame message
// of loop gen at the specified rate.
func frameCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}
