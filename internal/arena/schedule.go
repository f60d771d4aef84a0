package arena

import "time"

// FixedTimestep runs a system at a fixed period regardless of frame rate.
// Elapsed frame time is accumulated and spent one step at a time; the
// remainder carries over to the next frame.
type FixedTimestep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedTimestep creates a timer that fires once per step.
func NewFixedTimestep(step time.Duration) *FixedTimestep {
	if step <= 0 {
		panic("arena: fixed timestep must be positive")
	}
	return &FixedTimestep{step: step}
}

// Accumulate adds elapsed time to the timer.
func (f *FixedTimestep) Accumulate(elapsed time.Duration) {
	if elapsed > 0 {
		f.accumulator += elapsed
	}
}

// Expend consumes one step if enough time has accumulated.
// Call in a loop until it returns false.
func (f *FixedTimestep) Expend() bool {
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	return true
}

// Reset drops any accumulated time.
func (f *FixedTimestep) Reset() {
	f.accumulator = 0
}
