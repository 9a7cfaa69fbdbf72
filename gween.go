package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenFunc adapts fn to gween's (time, begin, change, duration) signature.
func TweenFunc(fn Func) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d == 0 {
			return b + c
		}
		return b + c*float32(fn(float64(t/d)))
	}
}

// TweenFunc returns the kind's curve in gween form. Custom and invalid kinds
// map to linear.
func (k Kind) TweenFunc() ease.TweenFunc {
	fn := k.Func()
	if fn == nil {
		fn = easeLinear
	}
	return TweenFunc(fn)
}

// FromTweenFunc turns a gween easing into a Func, so any ease.TweenFunc can
// stand in for a custom curve.
func FromTweenFunc(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// NewGween creates a single-channel gween tween driven by an easing
// selection, for hosts that already step gween tweens.
func NewGween(begin, end, duration float32, e Easing) (*gween.Tween, error) {
	fn, err := e.Resolve()
	if err != nil {
		return nil, err
	}
	return gween.New(begin, end, duration, TweenFunc(fn)), nil
}
