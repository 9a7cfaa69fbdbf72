// Package tween animates scalar and composite values from a start state to
// an end state over a fixed duration, one frame at a time.
//
// It has three layers: a catalog of easing curves ([Kind], [Evaluate]),
// a per-channel [Interpolator] that blends values with one easing function per
// channel, and a [Driver] that the host steps once per frame.
//
// # Quick start
//
// Bind a property with a [Tweener] and call [Driver.Update] each frame with
// the elapsed time since the previous frame:
//
//	pos := tween.NewTweener(
//		func(s *Sprite) tween.Vec2 { return s.Pos },
//		func(s *Sprite, v tween.Vec2) { s.Pos = v },
//	)
//	d := pos.To(sprite, tween.Vec2{X: 100, Y: 50}, 1.5, tween.Vec2Of(tween.BounceOut.Func()))
//
//	// in the frame loop
//	if d.Update(dt) {
//		// finished
//	}
//
// [Tweener.To] starts from the property's current value, [Tweener.From] ends
// on it, and [Tweener.Full] takes both ends explicitly. The returned driver has
// already written the start value.
//
// # Easing
//
// Every named kind maps 0 to 0 and 1 to 1 exactly. Back and elastic curves
// overshoot in between, and interpolation is deliberately unclamped so the
// overshoot reaches the target. Channels ease independently:
//
//	tween.Vec2XY(tween.BounceOut.Func(), tween.Linear.Func())
//
// Authored curves use the Custom kind with a [Curve]. Selections can be
// stored as YAML through [Easing] and [Presets].
//
// # Scheduling
//
// Drivers are single-threaded and cooperative. There is no global manager:
// the host owns its drivers and steps them, either directly, with [Run] over
// a channel of frame deltas, or with the helpers in the ebitenhost and ecs
// packages. Cancel stops a driver and leaves the last written value in place.
//
// A driver with a zero or negative duration writes the start value once and
// completes without writing the end value.
package tween
