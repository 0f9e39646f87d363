package core

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow - move paddle left (held)
	ActionRight              // Right arrow - move paddle right (held)
	ActionSprint             // Shift - sprint (held)
	ActionLaunch             // Enter - launch the paddle-bound ball
	ActionPause              // Space - start from menu, pause, resume
	ActionMenu               // Escape - return to menu
	ActionHelp               // H - announce keyboard shortcuts
	ActionToggleAudio        // A - toggle sound cues
	ActionToggleDebug        // D - toggle debug logging
	ActionQuit               // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionSprint:      "Sprint",
	ActionLaunch:      "Launch",
	ActionPause:       "Pause",
	ActionMenu:        "Menu",
	ActionHelp:        "Help",
	ActionToggleAudio: "ToggleAudio",
	ActionToggleDebug: "ToggleDebug",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "Unknown"
}

// Pointer is the mouse state for one tick, in world coordinates.
type Pointer struct {
	X, Y    float64
	Moved   bool // Pointer moved since the previous tick
	Clicked bool // Primary button pressed this tick
}

// InputFrame is the input state for one simulation tick. Held actions
// (Left, Right, Sprint) are present for every tick the key is down; the
// other actions are present only on the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}
