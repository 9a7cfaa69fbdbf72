package tween

import (
	"context"
	"errors"
)

// ErrClockStopped is returned by Run when the tick channel closes before the
// stepper finishes.
var ErrClockStopped = errors.New("tween: frame clock stopped")

// Stepper is a per-frame animation step. Every *Driver satisfies it.
type Stepper interface {
	// Update advances by dt seconds and reports whether the stepper is done.
	Update(dt float64) bool
	// Cancel stops the stepper without further writes.
	Cancel()
}

// Run resumes s once for every delta received on ticks, on the calling
// goroutine, until s is done. If ctx is cancelled first, s is cancelled and
// ctx.Err() is returned; a step already in progress finishes before that.
func Run(ctx context.Context, s Stepper, ticks <-chan float64) error {
	for {
		select {
		case <-ctx.Done():
			s.Cancel()
			return ctx.Err()
		case dt, ok := <-ticks:
			if !ok {
				return ErrClockStopped
			}
			if s.Update(dt) {
				return nil
			}
		}
	}
}
