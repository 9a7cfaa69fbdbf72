package tween

import (
	"testing"

	"github.com/sgostarter/i/l"
)

type sprite struct {
	Pos   Vec2
	Tint  Color
	Alpha float64
}

var (
	spritePos = NewTweener(
		func(s *sprite) Vec2 { return s.Pos },
		func(s *sprite, v Vec2) { s.Pos = v },
	)
	spriteAlpha = NewTweener(
		func(s *sprite) float64 { return s.Alpha },
		func(s *sprite, v float64) { s.Alpha = v },
	)
)

func TestTweenerToStartsFromCurrent(t *testing.T) {
	s := &sprite{Pos: Vec2{X: 10, Y: 20}}
	d := spritePos.To(s, Vec2{X: 100, Y: 200}, 1, Vec2Of(Linear.Func()))

	if d.State() != StateRunning {
		t.Fatalf("state = %v, want running", d.State())
	}
	if d.From() != (Vec2{X: 10, Y: 20}) {
		t.Errorf("From() = %+v", d.From())
	}

	d.Update(0.5)
	d.Update(0.5)
	if !d.Done() {
		t.Fatal("expected Done after full duration")
	}
	if s.Pos != (Vec2{X: 100, Y: 200}) {
		t.Errorf("Pos = %+v, want {100 200}", s.Pos)
	}
}

func TestTweenerFromEndsOnCurrent(t *testing.T) {
	s := &sprite{Alpha: 1}
	d := spriteAlpha.From(s, 0, 1, Scalar(Linear.Func()))

	// Snaps to the start value immediately.
	if s.Alpha != 0 {
		t.Fatalf("Alpha = %f, want 0 right after From", s.Alpha)
	}
	d.Update(0.5)
	if s.Alpha != 0.5 {
		t.Errorf("Alpha = %f, want 0.5 at halfway", s.Alpha)
	}
	d.Update(0.5)
	if s.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", s.Alpha)
	}
}

func TestTweenerFullIgnoresCurrent(t *testing.T) {
	s := &sprite{Tint: ColorWhite}
	tint := NewTweener(
		func(s *sprite) Color { return s.Tint },
		func(s *sprite, v Color) { s.Tint = v },
	)
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	d := tint.Full(s, Color{R: 1, A: 1}, target, 1, ColorRGBA(Linear.Func(), Linear.Func()))

	if s.Tint != (Color{R: 1, A: 1}) {
		t.Fatalf("Tint = %+v, want start value", s.Tint)
	}
	d.Update(1)
	if s.Tint != target {
		t.Errorf("Tint = %+v, want %+v", s.Tint, target)
	}
}

type alphaAccessor struct{}

func (alphaAccessor) Get(s *sprite) float64    { return s.Alpha }
func (alphaAccessor) Set(s *sprite, v float64) { s.Alpha = v }

func TestTweenerForAccessor(t *testing.T) {
	var acc Accessor[float64, *sprite] = TweenerFor[float64, *sprite](alphaAccessor{})
	s := &sprite{Alpha: 0.2}
	if acc.Get(s) != 0.2 {
		t.Fatal("Get through adapted accessor failed")
	}
	acc.Set(s, 0.4)
	if s.Alpha != 0.4 {
		t.Fatal("Set through adapted accessor failed")
	}
}

func TestTweenerEasingSelection(t *testing.T) {
	s := &sprite{}
	d, err := spriteAlpha.ToEasing(s, 10, 1, ScalarShape, EasingOf(QuadIn))
	if err != nil {
		t.Fatal(err)
	}
	d.Update(0.5)
	if s.Alpha != 2.5 {
		t.Errorf("Alpha = %f, want 2.5", s.Alpha)
	}

	if _, err := spriteAlpha.FromEasing(s, 0, 1, ScalarShape, Easing{Kind: Custom}); err == nil {
		t.Error("expected error for custom easing without curve")
	}

	d, err = spriteAlpha.FullEasing(s, 0, 1, 1, ScalarShape, CustomEasing(LinearCurve(0, 0, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	d.Update(0.25)
	if s.Alpha != 0.25 {
		t.Errorf("Alpha = %f, want 0.25", s.Alpha)
	}
}

func TestTweenerWithLogger(t *testing.T) {
	s := &sprite{}
	d := spriteAlpha.WithLogger(l.NewNopLoggerWrapper()).Full(s, 0, 1, 0.1, Scalar(Linear.Func()))
	if !d.Update(0.1) {
		t.Fatal("expected done")
	}
}

func TestPointerTweener(t *testing.T) {
	var rot float64
	d := Pointer[float64]().To(&rot, 3, 1, Scalar(Linear.Func()))
	d.Update(1)
	if rot != 3 {
		t.Errorf("rot = %f, want 3", rot)
	}
}
