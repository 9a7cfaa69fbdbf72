package tween

import (
	"math"
	"testing"
)

// recorder captures every write made by a driver.
type recorder struct {
	values []float64
}

func (r *recorder) set(_ *recorder, v float64) {
	r.values = append(r.values, v)
}

// progressRecorder wraps an interpolator to capture the progress of each write.
type progressRecorder[V any] struct {
	inner    Interpolator[V]
	progress []float64
}

func (p *progressRecorder[V]) Interpolate(from, to V, t float64) V {
	p.progress = append(p.progress, t)
	return p.inner.Interpolate(from, to, t)
}

func TestDriverLinearScenario(t *testing.T) {
	rec := &recorder{}
	prog := &progressRecorder[float64]{inner: Scalar(Linear.Func())}
	d := NewDriver(rec, rec.set, 0.0, 10.0, 2, prog)
	d.Start()

	for i := 0; i < 4; i++ {
		done := d.Update(0.5)
		if done != (i == 3) {
			t.Fatalf("step %d: done = %v", i, done)
		}
	}

	wantValues := []float64{0, 2.5, 5, 7.5, 10}
	wantProgress := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(rec.values) != len(wantValues) {
		t.Fatalf("got %d writes %v, want %v", len(rec.values), rec.values, wantValues)
	}
	for i := range wantValues {
		if rec.values[i] != wantValues[i] {
			t.Errorf("write %d = %v, want %v", i, rec.values[i], wantValues[i])
		}
		if prog.progress[i] != wantProgress[i] {
			t.Errorf("progress %d = %v, want %v", i, prog.progress[i], wantProgress[i])
		}
	}
	if d.State() != StateCompleted {
		t.Errorf("state = %v, want completed", d.State())
	}
}

func TestDriverVec2Scenario(t *testing.T) {
	var pos Vec2
	d := Pointer[Vec2]().Full(&pos, Vec2{}, Vec2{X: 10, Y: 20}, 1, Vec2XY(Linear.Func(), Linear.Func()))

	d.Update(0.5)
	if pos != (Vec2{X: 5, Y: 10}) {
		t.Errorf("pos at progress 0.5 = %+v, want {5 10}", pos)
	}
}

func TestDriverFirstWriteIsProgressZero(t *testing.T) {
	rec := &recorder{}
	prog := &progressRecorder[float64]{inner: Scalar(QuadOut.Func())}
	d := NewDriver(rec, rec.set, 3.0, 9.0, 1, prog)

	if d.State() != StateCreated {
		t.Fatalf("state = %v, want created", d.State())
	}
	if len(rec.values) != 0 {
		t.Fatal("nothing should be written before the driver starts")
	}

	// A large first delta is ignored: the first write is always progress 0.
	if d.Update(5) {
		t.Fatal("driver should still be running after its first update")
	}
	if len(prog.progress) != 1 || prog.progress[0] != 0 || rec.values[0] != 3 {
		t.Fatalf("first write progress=%v values=%v", prog.progress, rec.values)
	}
	if d.State() != StateRunning {
		t.Errorf("state = %v, want running", d.State())
	}
}

func TestDriverCompletesExactlyOnceAtOne(t *testing.T) {
	rec := &recorder{}
	prog := &progressRecorder[float64]{inner: Scalar(Linear.Func())}
	d := NewDriver(rec, rec.set, 0.0, 1.0, 1, prog)
	d.Start()

	// 0.3 does not divide 1: the last step overshoots the duration.
	steps := 0
	for !d.Update(0.3) {
		steps++
		if steps > 10 {
			t.Fatal("driver never completed")
		}
	}
	// Further updates are no-ops.
	d.Update(0.3)
	d.Update(0.3)

	ones := 0
	for i, p := range prog.progress {
		if p > 1 {
			t.Errorf("write %d has progress %v > 1", i, p)
		}
		if i > 0 && p <= prog.progress[i-1] {
			t.Errorf("progress not strictly increasing at %d: %v", i, prog.progress)
		}
		if p == 1 {
			ones++
		}
	}
	if ones != 1 {
		t.Errorf("progress 1 written %d times, want 1", ones)
	}
	if last := rec.values[len(rec.values)-1]; last != 1 {
		t.Errorf("final value = %v, want 1", last)
	}
	if d.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", d.Progress())
	}
}

func TestDriverZeroDurationWritesStartOnly(t *testing.T) {
	for _, dur := range []float64{0, -1, math.NaN()} {
		rec := &recorder{}
		d := NewDriver(rec, rec.set, 4.0, 8.0, dur, Scalar(Linear.Func()))
		d.Start()

		if !d.Done() || d.State() != StateCompleted {
			t.Errorf("duration %v: state = %v, want completed", dur, d.State())
		}
		d.Update(1)
		if len(rec.values) != 1 || rec.values[0] != 4 {
			t.Errorf("duration %v: writes = %v, want [4]", dur, rec.values)
		}
	}
}

func TestDriverZeroDurationViaUpdate(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(rec, rec.set, 4.0, 8.0, 0, Scalar(Linear.Func()))
	if !d.Update(0.016) {
		t.Fatal("zero-duration driver should be done after its first update")
	}
	if len(rec.values) != 1 || rec.values[0] != 4 {
		t.Errorf("writes = %v, want [4]", rec.values)
	}
}

func TestDriverCancelStopsWrites(t *testing.T) {
	var v float64
	d := Pointer[float64]().Full(&v, 0, 100, 1, Scalar(Linear.Func()))

	d.Update(0.25)
	d.Update(0.25)
	if d.Done() {
		t.Fatal("should not be done yet")
	}

	d.Cancel()
	saved := v
	if !d.Update(0.25) {
		t.Fatal("cancelled driver should report done")
	}
	if v != saved {
		t.Errorf("value changed from %f to %f after cancel", saved, v)
	}
	if v != 50 {
		t.Errorf("value = %f, want 50 (no snap to end)", v)
	}
	if d.State() != StateAbandoned {
		t.Errorf("state = %v, want abandoned", d.State())
	}

	// Cancelling again, or starting again, changes nothing.
	d.Cancel()
	d.Start()
	if d.State() != StateAbandoned || v != saved {
		t.Error("abandoned driver should stay abandoned")
	}
}

func TestDriverCancelBeforeStart(t *testing.T) {
	rec := &recorder{}
	d := NewDriver(rec, rec.set, 1.0, 2.0, 1, Scalar(Linear.Func()))
	d.Cancel()
	d.Update(0.5)
	if len(rec.values) != 0 {
		t.Errorf("writes = %v, want none", rec.values)
	}
}

func TestDriverCancelAfterCompleteKeepsCompleted(t *testing.T) {
	var v float64
	d := Pointer[float64]().Full(&v, 0, 1, 0.5, Scalar(Linear.Func()))
	d.Update(0.5)
	d.Cancel()
	if d.State() != StateCompleted {
		t.Errorf("state = %v, want completed", d.State())
	}
}

func TestDriverNegativeDeltaIgnored(t *testing.T) {
	var v float64
	d := Pointer[float64]().Full(&v, 0, 10, 1, Scalar(Linear.Func()))
	d.Update(0.5)
	d.Update(-0.25)
	if d.Elapsed() != 0.5 || v != 5 {
		t.Errorf("elapsed = %v, v = %v, want 0.5 and 5", d.Elapsed(), v)
	}
}

func TestDriverSetterPanicAbandons(t *testing.T) {
	calls := 0
	set := func(_ int, _ float64) {
		calls++
		if calls == 3 {
			panic("target gone")
		}
	}
	d := NewDriver(0, set, 0.0, 1.0, 1, Scalar(Linear.Func()))
	d.Start()
	d.Update(0.25)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("setter panic should propagate")
			}
		}()
		d.Update(0.25)
	}()

	if d.State() != StateAbandoned {
		t.Errorf("state = %v, want abandoned", d.State())
	}
	if d.Elapsed() != 0.25 {
		t.Errorf("elapsed = %v, want 0.25 (last completed step)", d.Elapsed())
	}
	if !d.Update(0.25) || calls != 3 {
		t.Errorf("abandoned driver should not write again, calls = %d", calls)
	}
}

func TestDriverAccessors(t *testing.T) {
	ctx := &recorder{}
	d := NewDriver(ctx, ctx.set, 1.0, 2.0, 3, Scalar(Linear.Func()))
	if d.From() != 1 || d.To() != 2 || d.Duration() != 3 || d.Context() != ctx {
		t.Error("accessors do not reflect construction arguments")
	}
	if StateRunning.String() != "running" || State(9).String() != "unknown" {
		t.Error("unexpected State names")
	}
}

func TestDriversInterleaveIndependently(t *testing.T) {
	var a, b float64
	da := Pointer[float64]().Full(&a, 0, 10, 1, Scalar(Linear.Func()))
	db := Pointer[float64]().Full(&b, 100, 0, 0.5, Scalar(Linear.Func()))

	da.Update(0.25)
	db.Update(0.25)
	if a != 2.5 || b != 50 {
		t.Errorf("a = %f, b = %f", a, b)
	}
	da.Update(0.25)
	db.Update(0.25)
	if !db.Done() || da.Done() {
		t.Error("b should finish before a")
	}
	if a != 5 || b != 0 {
		t.Errorf("a = %f, b = %f", a, b)
	}
}

func TestDriverUpdateZeroAlloc(t *testing.T) {
	var v Vec2
	d := Pointer[Vec2]().Full(&v, Vec2{}, Vec2{X: 100, Y: 100}, 1000, Vec2Of(QuadInOut.Func()))

	// Warm up; the first call writes the start value.
	d.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		d.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Driver.Update allocated %f times per run, want 0", result)
	}
}

func TestDriverZeroDeltaSkipsWrite(t *testing.T) {
	rec := &recorder{}
	prog := &progressRecorder[float64]{inner: Scalar(Linear.Func())}
	d := NewDriver(rec, rec.set, 0.0, 10.0, 1, prog)
	d.Start()
	d.Update(0)
	d.Update(0.5)
	d.Update(0)
	d.Update(-1)
	d.Update(0.5)

	want := []float64{0, 0.5, 1}
	if len(prog.progress) != len(want) {
		t.Fatalf("progress = %v, want %v", prog.progress, want)
	}
	for i := range want {
		if prog.progress[i] != want[i] {
			t.Errorf("progress %d = %v, want %v", i, prog.progress[i], want[i])
		}
	}
}

func TestDriverNaNProgressWithCustomCurve(t *testing.T) {
	var v float64
	curve := NewCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 0.8},
		Keyframe{Time: 1, Value: 1},
	)
	d, err := Pointer[float64]().FullEasing(&v, 0, 10, math.Inf(1), ScalarShape, CustomEasing(curve))
	if err != nil {
		t.Fatal(err)
	}

	// Inf/Inf progress is NaN; it must flow through the curve without panicking.
	if d.Update(math.Inf(1)) {
		t.Error("NaN progress should not complete the driver")
	}
	if !math.IsNaN(v) {
		t.Errorf("v = %v, want NaN", v)
	}
}
