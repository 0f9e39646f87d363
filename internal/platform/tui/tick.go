// Package tui runs Speedball in a terminal with Bubble Tea, locally or
// over SSH. It maps keys and mouse to input frames, scales the world onto
// a cell buffer and keeps the session flow (launcher, game, scores).
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model whose loop sent it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextGen returns a fresh tick loop identity.
func nextGen() uint64 { return tickGen.Add(1) }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
