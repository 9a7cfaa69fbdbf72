package tween

import "github.com/sgostarter/i/l"

// Accessor reads and writes one property of a target reached through ctx.
// Both methods are called synchronously from the driver's step.
type Accessor[V, C any] interface {
	Get(ctx C) V
	Set(ctx C, v V)
}

// Tweener binds a getter and setter for one property and starts drivers on
// it. The zero value is not usable; build one with NewTweener.
type Tweener[V, C any] struct {
	get    func(C) V
	set    func(C, V)
	logger l.Wrapper
}

// NewTweener creates a Tweener from a getter and a setter. The getter is only
// used by To and From.
func NewTweener[V, C any](get func(C) V, set func(C, V)) Tweener[V, C] {
	return Tweener[V, C]{get: get, set: set}
}

// TweenerFor adapts an Accessor.
func TweenerFor[V, C any](acc Accessor[V, C]) Tweener[V, C] {
	return NewTweener(acc.Get, acc.Set)
}

// Pointer returns a Tweener whose context is a pointer to the animated value.
func Pointer[V any]() Tweener[V, *V] {
	return NewTweener(
		func(p *V) V { return *p },
		func(p *V, v V) { *p = v },
	)
}

// WithLogger returns a copy of tw whose drivers log through logger.
func (tw Tweener[V, C]) WithLogger(logger l.Wrapper) Tweener[V, C] {
	tw.logger = logger
	return tw
}

// Get implements Accessor.
func (tw Tweener[V, C]) Get(ctx C) V { return tw.get(ctx) }

// Set implements Accessor.
func (tw Tweener[V, C]) Set(ctx C, v V) { tw.set(ctx, v) }

// To animates from the property's current value to to.
func (tw Tweener[V, C]) To(ctx C, to V, duration float64, interp Interpolator[V]) *Driver[V, C] {
	return tw.Full(ctx, tw.get(ctx), to, duration, interp)
}

// From animates from from to the property's current value.
func (tw Tweener[V, C]) From(ctx C, from V, duration float64, interp Interpolator[V]) *Driver[V, C] {
	return tw.Full(ctx, from, tw.get(ctx), duration, interp)
}

// Full animates between two explicit values. The returned driver has already
// written the start value; call Update once per frame to advance it.
func (tw Tweener[V, C]) Full(ctx C, from, to V, duration float64, interp Interpolator[V]) *Driver[V, C] {
	d := NewDriver(ctx, tw.set, from, to, duration, interp)
	if tw.logger != nil {
		d.SetLogger(tw.logger)
	}
	d.Start()
	return d
}

// ToEasing is To with an interpolator built from an easing selection, which
// is resolved once here and broadcast across every channel of shape.
func (tw Tweener[V, C]) ToEasing(ctx C, to V, duration float64, shape Shape[V], easing Easing) (*Driver[V, C], error) {
	fn, err := easing.Resolve()
	if err != nil {
		return nil, err
	}
	return tw.To(ctx, to, duration, NewInterpolator(shape, fn)), nil
}

// FromEasing is From with an interpolator built from an easing selection.
func (tw Tweener[V, C]) FromEasing(ctx C, from V, duration float64, shape Shape[V], easing Easing) (*Driver[V, C], error) {
	fn, err := easing.Resolve()
	if err != nil {
		return nil, err
	}
	return tw.From(ctx, from, duration, NewInterpolator(shape, fn)), nil
}

// FullEasing is Full with an interpolator built from an easing selection.
func (tw Tweener[V, C]) FullEasing(ctx C, from, to V, duration float64, shape Shape[V], easing Easing) (*Driver[V, C], error) {
	fn, err := easing.Resolve()
	if err != nil {
		return nil, err
	}
	return tw.Full(ctx, from, to, duration, NewInterpolator(shape, fn)), nil
}
