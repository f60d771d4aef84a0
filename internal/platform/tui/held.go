package tui

import (
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// opposite maps each direction to the other one on its axis.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// HeldKeys turns terminal key presses into held directions.
// Terminals report presses and auto-repeats but never releases, so a press
// keeps its direction held for a short window that each repeat extends.
// Pressing the opposite direction on the same axis releases the first one.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a latch with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press marks a direction as held from now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp, ok := opposite[a]; ok {
		delete(h.until, opp)
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Apply sets every direction still held at now on the frame and forgets
// expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// ReleaseAll forgets every held direction.
func (h *HeldKeys) ReleaseAll() {
	clear(h.until)
}
