package tween

import (
	"math"
	"strconv"

	"github.com/sgostarter/i/l"
)

// State is the lifecycle stage of a Driver.
type State uint8

const (
	StateCreated   State = iota // constructed, nothing written yet
	StateRunning                // initial value written, stepping
	StateCompleted              // progress reached 1
	StateAbandoned              // cancelled, or a write failed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Driver animates one value from a start to an end state over a fixed
// duration. The host calls Update once per frame with the time elapsed since
// the previous frame; each step writes the interpolated value back through the
// setter.
//
// A Driver is not safe for concurrent use. Two drivers writing the same
// property interleave in whatever order the host updates them.
type Driver[V, C any] struct {
	from, to V
	duration float64
	elapsed  float64
	progress float64

	interp Interpolator[V]
	ctx    C
	set    func(C, V)

	state  State
	logger l.Wrapper
}

// NewDriver creates a driver in the Created state. Nothing is written until
// Start or the first Update.
func NewDriver[V, C any](ctx C, set func(C, V), from, to V, duration float64, interp Interpolator[V]) *Driver[V, C] {
	return &Driver[V, C]{
		from:     from,
		to:       to,
		duration: duration,
		interp:   interp,
		ctx:      ctx,
		set:      set,
		logger:   l.NewNopLoggerWrapper(),
	}
}

// SetLogger replaces the driver's logger. A nil logger disables logging.
func (d *Driver[V, C]) SetLogger(logger l.Wrapper) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	d.logger = logger.WithFields(l.StringField(l.ClsKey, "Driver"))
}

// Start writes the value at progress 0 and moves the driver to Running. A
// duration that is zero, negative or NaN completes immediately after that
// write, leaving the target at the start value. Start is a no-op unless the
// driver is in the Created state.
func (d *Driver[V, C]) Start() {
	if d.state != StateCreated {
		return
	}

	d.write(0)
	d.state = StateRunning

	if !(d.elapsed < d.duration) {
		d.complete()
	}
}

// Update advances the driver by dt seconds and writes the value for the new
// progress. On a Created driver it performs Start instead and ignores dt, so
// the first write always uses progress 0. Negative dt counts as zero, and a
// step that leaves progress unchanged writes nothing.
//
// Update returns true once the driver has completed or been abandoned; the
// host should stop calling it then.
func (d *Driver[V, C]) Update(dt float64) bool {
	switch d.state {
	case StateCreated:
		d.Start()
		return d.Done()
	case StateRunning:
	default:
		return true
	}

	elapsed := d.elapsed
	if dt > 0 {
		elapsed += dt
	}
	progress := math.Min(elapsed/d.duration, 1)
	if progress == d.progress {
		// Writes stay strictly increasing in progress.
		d.elapsed = elapsed
		return false
	}

	d.write(progress)
	d.elapsed = elapsed
	d.progress = progress

	if progress >= 1 {
		d.complete()
		return true
	}
	return false
}

// Cancel abandons the driver. The last written value stays in place and no
// further writes happen. Cancelling a finished driver does nothing.
func (d *Driver[V, C]) Cancel() {
	if d.Done() {
		return
	}
	d.state = StateAbandoned
	d.logger.WithFields(l.StringField("elapsed", formatSeconds(d.elapsed))).Debug("tween abandoned")
}

// write sets the value for progress. The state reads Abandoned while the
// setter runs, so a setter that panics leaves the driver abandoned at its last
// completed step.
func (d *Driver[V, C]) write(progress float64) {
	prev := d.state
	d.state = StateAbandoned
	d.set(d.ctx, d.interp.Interpolate(d.from, d.to, progress))
	d.state = prev
}

func (d *Driver[V, C]) complete() {
	d.state = StateCompleted
	d.logger.WithFields(l.StringField("duration", formatSeconds(d.duration))).Debug("tween completed")
}

// Done reports whether the driver has completed or been abandoned.
func (d *Driver[V, C]) Done() bool {
	return d.state == StateCompleted || d.state == StateAbandoned
}

// State returns the driver's lifecycle stage.
func (d *Driver[V, C]) State() State { return d.state }

// Elapsed returns the accumulated time in seconds.
func (d *Driver[V, C]) Elapsed() float64 { return d.elapsed }

// Duration returns the duration fixed at construction.
func (d *Driver[V, C]) Duration() float64 { return d.duration }

// Progress returns the clamped progress of the last write.
func (d *Driver[V, C]) Progress() float64 { return d.progress }

// From returns the start value.
func (d *Driver[V, C]) From() V { return d.from }

// To returns the end value.
func (d *Driver[V, C]) To() V { return d.to }

// Context returns the opaque handle passed to the setter.
func (d *Driver[V, C]) Context() C { return d.ctx }

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64) + "s"
}
