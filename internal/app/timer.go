package app

import "time"

// FixedStep paces simulation updates at a steady generations-per-second
// rate, independent of how often the caller polls.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given rate. The first
// ShouldStep call always fires.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Duration(float64(time.Second) / rate)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
