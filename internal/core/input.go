package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement, one per hex direction.
	ActionRight
	ActionUpRight
	ActionUpLeft
	ActionLeft
	ActionDownLeft
	ActionDownRight

	ActionSelect  // Enter, Space - select a piece or confirm a target
	ActionPlace   // N - place a new piece under the cursor
	ActionCorrupt // C - corrupt the piece under the cursor
	ActionCancel  // Esc - drop the current selection
	ActionLetters // M - toggle the letters panel
	ActionNext    // ] - next letter
	ActionPrev    // [ - previous letter
	ActionRestart // R - restart from level 1
	ActionPause   // P - pause/unpause
	ActionQuit    // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionRight:     "Right",
	ActionUpRight:   "UpRight",
	ActionUpLeft:    "UpLeft",
	ActionLeft:      "Left",
	ActionDownLeft:  "DownLeft",
	ActionDownRight: "DownRight",
	ActionSelect:    "Select",
	ActionPlace:     "Place",
	ActionCorrupt:   "Corrupt",
	ActionCancel:    "Cancel",
	ActionLetters:   "Letters",
	ActionNext:      "Next",
	ActionPrev:      "Prev",
	ActionRestart:   "Restart",
	ActionPause:     "Pause",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Direction reports the hex direction index (0..5) for a cursor action.
func (a Action) Direction() (int, bool) {
	if a >= ActionRight && a <= ActionDownRight {
		return int(a - ActionRight), true
	}
	return 0, false
}

// InputFrame represents the input state during one frame.
// It contains all actions that were triggered during this frame, in order.
type InputFrame struct {
	// Actions keeps press order so that "move then select" resolves the way
	// the player typed it.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
