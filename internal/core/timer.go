package core

import (
	"context"
	"time"
)

// FixedStep paces a run loop at a steady interval between generations.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given interval.
// Negative intervals are treated as zero.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the delay between generations.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}

// Reset forgets the previous tick so the next Wait pauses a full interval.
func (f *FixedStep) Reset() { f.last = time.Time{} }

// Interval returns the configured delay.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until one interval has passed since the previous Wait returned,
// or until ctx is done. Time spent by the caller between calls counts towards
// the interval.
func (f *FixedStep) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.last.IsZero() {
		f.last = f.now()
	}
	remaining := f.step - f.now().Sub(f.last)
	if remaining > 0 {
		t := time.NewTimer(remaining)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	f.last = f.now()
	return nil
}
