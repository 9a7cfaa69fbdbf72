package tween

// Interpolator blends a start and end value at progress t.
type Interpolator[V any] interface {
	Interpolate(from, to V, t float64) V
}

// Lerp is unclamped linear interpolation. It is written as a*(1-t) + b*t
// rather than a + (b-a)*t so that t=0 yields a and t=1 yields b exactly;
// values in between may differ from the latter form in the last bits.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Channels holds up to four independently easable components of a value.
type Channels [4]float64

// Shape describes how a value type splits into channels and back.
type Shape[V any] struct {
	Count int
	Split func(V) Channels
	Join  func(Channels) V
}

// Value shapes for the built-in value types.
var (
	ScalarShape = Shape[float64]{
		Count: 1,
		Split: func(v float64) Channels { return Channels{v} },
		Join:  func(c Channels) float64 { return c[0] },
	}
	Vec2Shape = Shape[Vec2]{
		Count: 2,
		Split: func(v Vec2) Channels { return Channels{v.X, v.Y} },
		Join:  func(c Channels) Vec2 { return Vec2{c[0], c[1]} },
	}
	Vec3Shape = Shape[Vec3]{
		Count: 3,
		Split: func(v Vec3) Channels { return Channels{v.X, v.Y, v.Z} },
		Join:  func(c Channels) Vec3 { return Vec3{c[0], c[1], c[2]} },
	}
	ColorShape = Shape[Color]{
		Count: 4,
		Split: func(v Color) Channels { return Channels{v.R, v.G, v.B, v.A} },
		Join:  func(c Channels) Color { return Color{c[0], c[1], c[2], c[3]} },
	}
)

// ChannelInterpolator eases each channel of a value with its own Func and
// blends it with Lerp. It holds no state beyond its easing functions and is
// safe to share between steps of a driver.
type ChannelInterpolator[V any] struct {
	shape  Shape[V]
	easing [4]Func
}

// NewInterpolator builds an interpolator for shape. A single easing is
// broadcast to every channel; otherwise exactly shape.Count easings must be
// given, one per channel. Nil easings default to Linear.
func NewInterpolator[V any](shape Shape[V], easing ...Func) ChannelInterpolator[V] {
	if shape.Count < 1 || shape.Count > len(Channels{}) {
		panic("tween: shape channel count must be between 1 and 4")
	}

	in := ChannelInterpolator[V]{shape: shape}
	switch len(easing) {
	case 1:
		for i := 0; i < shape.Count; i++ {
			in.easing[i] = easing[0]
		}
	case shape.Count:
		copy(in.easing[:], easing)
	default:
		panic("tween: easing count must be 1 or match the shape's channel count")
	}
	for i := 0; i < shape.Count; i++ {
		if in.easing[i] == nil {
			in.easing[i] = easeLinear
		}
	}
	return in
}

// Interpolate returns the per-channel eased blend of from and to at t.
func (in ChannelInterpolator[V]) Interpolate(from, to V, t float64) V {
	a := in.shape.Split(from)
	b := in.shape.Split(to)
	var out Channels
	for i := 0; i < in.shape.Count; i++ {
		out[i] = Lerp(a[i], b[i], in.easing[i](t))
	}
	return in.shape.Join(out)
}

// Channel returns the easing function applied to channel i.
func (in ChannelInterpolator[V]) Channel(i int) Func {
	return in.easing[i]
}

// Scalar interpolates a float64 with the given easing.
func Scalar(easing Func) ChannelInterpolator[float64] {
	return NewInterpolator(ScalarShape, easing)
}

// Vec2Of eases both components of a Vec2 with one function.
func Vec2Of(easing Func) ChannelInterpolator[Vec2] {
	return NewInterpolator(Vec2Shape, easing)
}

// Vec2XY eases X and Y independently.
func Vec2XY(easingX, easingY Func) ChannelInterpolator[Vec2] {
	return NewInterpolator(Vec2Shape, easingX, easingY)
}

// Vec3Of eases all three components of a Vec3 with one function.
func Vec3Of(easing Func) ChannelInterpolator[Vec3] {
	return NewInterpolator(Vec3Shape, easing)
}

// Vec3XYZ eases X, Y and Z independently.
func Vec3XYZ(easingX, easingY, easingZ Func) ChannelInterpolator[Vec3] {
	return NewInterpolator(Vec3Shape, easingX, easingY, easingZ)
}

// ColorOf eases all four channels of a Color with one function.
func ColorOf(easing Func) ChannelInterpolator[Color] {
	return NewInterpolator(ColorShape, easing)
}

// ColorRGBA eases the color channels with one function and alpha with another.
func ColorRGBA(easingRGB, easingA Func) ChannelInterpolator[Color] {
	return NewInterpolator(ColorShape, easingRGB, easingRGB, easingRGB, easingA)
}

// ColorChannels eases R, G, B and A independently.
func ColorChannels(easingR, easingG, easingB, easingA Func) ChannelInterpolator[Color] {
	return NewInterpolator(ColorShape, easingR, easingG, easingB, easingA)
}
