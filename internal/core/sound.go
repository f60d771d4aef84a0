package core

import (
	"io"
	"sync"
)

// Sound is a fire-and-forget sound effect.
// Play must not block the simulation.
type Sound interface {
	Play()
}

// SilentSound discards every Play call.
type SilentSound struct{}

// Play does nothing.
func (SilentSound) Play() {}

// Bell rings the terminal bell by writing BEL to w.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell that writes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes a single BEL byte. Write errors are ignored.
func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}
