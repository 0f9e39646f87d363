package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/speedball/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	SprintLeft  key.Binding
	SprintRight key.Binding
	Sprint      key.Binding
	Launch      key.Binding
	Pause       key.Binding
	Menu        key.Binding
	Help        key.Binding
	ToggleAudio key.Binding
	ToggleDebug key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Sprint, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SprintLeft, k.SprintRight, k.Sprint},
		{k.Launch, k.Pause, k.Menu},
		{k.Help, k.ToggleAudio, k.ToggleDebug, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		SprintLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-←", "sprint left"),
		),
		SprintRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-→", "sprint right"),
		),
		Sprint: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sprint on/off"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "shortcuts"),
		),
		ToggleAudio: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sound"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug log"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Press is what one key message means for the game.
type Press struct {
	Action core.Action // Edge action, or ActionNone
	Hold   core.Action // Held action to refresh, or ActionNone
	Sprint bool        // Key also holds sprint
	Toggle bool        // Key flips the latched sprint
}

// MapKey translates a key message. Audio, debug and screenshot keys are
// reported as actions for the model to handle.
func (k KeyMap) MapKey(msg tea.KeyMsg) Press {
	switch {
	case key.Matches(msg, k.Quit):
		return Press{Action: core.ActionQuit}
	case key.Matches(msg, k.Left):
		return Press{Hold: core.ActionLeft}
	case key.Matches(msg, k.Right):
		return Press{Hold: core.ActionRight}
	case key.Matches(msg, k.SprintLeft):
		return Press{Hold: core.ActionLeft, Sprint: true}
	case key.Matches(msg, k.SprintRight):
		return Press{Hold: core.ActionRight, Sprint: true}
	case key.Matches(msg, k.Sprint):
		return Press{Toggle: true}
	case key.Matches(msg, k.Launch):
		return Press{Action: core.ActionLaunch}
	case key.Matches(msg, k.Pause):
		return Press{Action: core.ActionPause}
	case key.Matches(msg, k.Menu):
		return Press{Action: core.ActionMenu}
	case key.Matches(msg, k.Help):
		return Press{Action: core.ActionHelp}
	case key.Matches(msg, k.ToggleAudio):
		return Press{Action: core.ActionToggleAudio}
	case key.Matches(msg, k.ToggleDebug):
		return Press{Action: core.ActionToggleDebug}
	}
	return Press{}
}

// holdTracker emulates held keys. Terminals only report presses, so a
// press holds its action for a window of ticks that key repeat keeps
// refreshing.
type holdTracker struct {
	window int
	left   map[core.Action]int
}

func newHoldTracker(window int) *holdTracker {
	return &holdTracker{window: max(1, window), left: make(map[core.Action]int)}
}

// press starts or refreshes a. Left and Right cancel each other.
func (h *holdTracker) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}
	h.left[a] = h.window
}

// apply sets every held action on f and counts the window down.
func (h *holdTracker) apply(f *core.InputFrame) {
	for a, n := range h.left {
		f.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

func (h *holdTracker) held(a core.Action) bool {
	return h.left[a] > 0
}

func (h *holdTracker) reset() {
	clear(h.left)
}
