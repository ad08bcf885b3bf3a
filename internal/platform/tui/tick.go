// Package tui provides the Bubble Tea integration for Skyfall.
// It maps keyboard input to engine triggers and redraws the latest
// session snapshot once per rendered frame; the simulation itself runs
// in the engine's own drivers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a redraw of the latest snapshot.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
