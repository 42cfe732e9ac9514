package core

import "time"

// FixedStep converts elapsed wall time into a whole number of ticks at a fixed
// interval. It never sleeps; the caller's event loop feeds it time.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxTicks    int
}

// NewFixedStep constructs a FixedStep firing every interval. At most maxTicks
// ticks are reported per call so a stalled loop does not trigger a burst of
// catch-up steps; maxTicks <= 0 means one tick per call.
func NewFixedStep(interval time.Duration, maxTicks int) *FixedStep {
	if maxTicks <= 0 {
		maxTicks = 1
	}
	fs := &FixedStep{maxTicks: maxTicks}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. Non-positive values become 1ms.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	f.step = d
	if f.accumulator > d {
		f.accumulator = d
	}
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance adds delta to the accumulator and returns how many ticks are due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.step && ticks < f.maxTicks {
		f.accumulator -= f.step
		ticks++
	}
	if ticks == f.maxTicks && f.accumulator > f.step {
		f.accumulator = f.step
	}
	return ticks
}

// Tick measures the time since the previous call and advances by it. The first
// call only records now.
func (f *FixedStep) Tick(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Reset drops accumulated time and forgets the last tick timestamp.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
