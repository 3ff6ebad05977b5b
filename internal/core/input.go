package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionJump           // Space, W, Up - jump
	ActionBuild          // B, X - place a block under the feet
	ActionConfirm        // Enter, Space - continue to the next level
	ActionRestart        // R key - restart the run
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionBuild:
		return "Build"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick.
// Actions holds key presses that arrived during the tick. Held holds actions
// whose key is still considered down from an earlier press.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held down without a fresh press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has reports whether the action is pressed or held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a] || f.Held[a]
}

// Pressed reports whether a key press for the action arrived this frame.
// Edge-triggered actions should use Pressed rather than Has.
func (f InputFrame) Pressed(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// HoldTracker turns a stream of key presses into held keys.
// Terminals report presses and auto-repeats but never releases, so an action
// counts as held for window ticks after its last press.
type HoldTracker struct {
	window int
	tick   int
	last   map[Action]int
}

// NewHoldTracker creates a tracker that keeps an action held for window
// ticks after its most recent press. A window below 1 disables holding.
func NewHoldTracker(window int) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[Action]int),
	}
}

// Update records the presses in frame and returns a frame with Held filled
// in for every action still inside its hold window. It advances the tracker
// by one tick.
func (h *HoldTracker) Update(frame InputFrame) InputFrame {
	out := NewInputFrame()
	for a, ok := range frame.Actions {
		if ok {
			out.Set(a)
			h.last[a] = h.tick
		}
	}
	for a, at := range h.last {
		if h.tick-at >= h.window {
			delete(h.last, a)
			continue
		}
		if !out.Pressed(a) {
			out.Hold(a)
		}
	}
	h.tick++
	return out
}

// Release forgets any hold on the action.
func (h *HoldTracker) Release(a Action) {
	delete(h.last, a)
}

// Reset forgets every hold.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
