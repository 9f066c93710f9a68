package core

import (
	"fmt"
	"strings"
)

// Action is a semantic input, abstracted from the physical key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Shift the piece one column left
	ActionRight           // Shift the piece one column right
	ActionSoftDrop        // One row down, one point
	ActionHardDrop        // Drop to the floor and lock
	ActionRotate          // Next rotation variant
	ActionHold            // Stash or swap the active piece
	ActionPause           // Toggle pause
	ActionRestart         // Start a fresh game
	ActionConfirm         // Menu select
	ActionBack            // Leave to the menu
	ActionQuit            // Exit the session
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionSoftDrop: "SoftDrop",
	ActionHardDrop: "HardDrop",
	ActionRotate:   "Rotate",
	ActionHold:     "Hold",
	ActionPause:    "Pause",
	ActionRestart:  "Restart",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionQuit:     "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// GameplayActions lists the actions a player can rebind, in the order the
// game applies them within one tick.
func GameplayActions() []Action {
	return []Action{
		ActionHold,
		ActionRotate,
		ActionLeft,
		ActionRight,
		ActionSoftDrop,
		ActionHardDrop,
		ActionPause,
		ActionRestart,
	}
}

// ParseAction resolves an action name, ignoring case.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if a != ActionNone && strings.EqualFold(name, s) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", s)
}

// InputFrame collects the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops all actions so the frame can be reused for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone copies the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
