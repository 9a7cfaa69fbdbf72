package tween

import (
	"math"
	"strconv"
	"strings"
)

// Func maps normalized progress to shaped progress. Output is not bounded to
// [0, 1]; back and elastic curves overshoot.
type Func func(t float64) float64

// Kind names an easing curve. The numeric values are persisted in easing
// selections and must not be reordered.
type Kind int

const (
	Linear Kind = iota
	Custom      // sampled Curve supplied by the selection
	SineIn
	SineOut
	SineInOut
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	CircIn
	CircOut
	CircInOut
	BackIn
	BackOut
	BackInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BounceIn
	BounceOut
	BounceInOut

	kindCount
)

var kindNames = [kindCount]string{
	"Linear", "Custom",
	"SineIn", "SineOut", "SineInOut",
	"QuadIn", "QuadOut", "QuadInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuartIn", "QuartOut", "QuartInOut",
	"QuintIn", "QuintOut", "QuintInOut",
	"ExpoIn", "ExpoOut", "ExpoInOut",
	"CircIn", "CircOut", "CircInOut",
	"BackIn", "BackOut", "BackInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"BounceIn", "BounceOut", "BounceInOut",
}

// funcs is indexed by Kind. The Custom slot is nil; custom curves are
// resolved through an Easing selection.
var funcs = [kindCount]Func{
	easeLinear, nil,
	easeSineIn, easeSineOut, easeSineInOut,
	easeQuadIn, easeQuadOut, easeQuadInOut,
	easeCubicIn, easeCubicOut, easeCubicInOut,
	easeQuartIn, easeQuartOut, easeQuartInOut,
	easeQuintIn, easeQuintOut, easeQuintInOut,
	easeExpoIn, easeExpoOut, easeExpoInOut,
	easeCircIn, easeCircOut, easeCircInOut,
	easeBackIn, easeBackOut, easeBackInOut,
	easeElasticIn, easeElasticOut, easeElasticInOut,
	easeBounceIn, easeBounceOut, easeBounceInOut,
}

// Valid reports whether k is one of the enumerated kinds, Custom included.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the curve name, e.g. "QuadInOut".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Func returns the closed-form easing function for k. It returns nil for
// Custom and for invalid kinds.
func (k Kind) Func() Func {
	if !k.Valid() {
		return nil
	}
	return funcs[k]
}

// Kinds returns every named kind in enumeration order, excluding Custom.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := Linear; k < kindCount; k++ {
		if k != Custom {
			out = append(out, k)
		}
	}
	return out
}

// ParseKind looks a kind up by name, ignoring case.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), true
		}
	}
	return 0, false
}

// Evaluate applies the named curve kind to t. t is not clamped. Custom has no
// curve attached at this level and evaluates as Linear; invalid kinds do the
// same.
func Evaluate(kind Kind, t float64) float64 {
	if fn := kind.Func(); fn != nil {
		return fn(t)
	}
	return t
}

func easeLinear(t float64) float64 { return t }

// Sine

func easeSineIn(t float64) float64 {
	// cos(π/2) is not exactly zero in float64.
	if t == 1 {
		return 1
	}
	return -math.Cos(t*(math.Pi/2)) + 1
}

func easeSineOut(t float64) float64 {
	return math.Sin(t * (math.Pi / 2))
}

func easeSineInOut(t float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t) - 1)
}

// Polynomials. InOut variants double t and re-base the second half.

func easeQuadIn(t float64) float64 { return t * t }

func easeQuadOut(t float64) float64 { return -t * (t - 2) }

func easeQuadInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func easeCubicIn(t float64) float64 { return t * t * t }

func easeCubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func easeQuartIn(t float64) float64 { return t * t * t * t }

func easeQuartOut(t float64) float64 {
	t--
	return -(t*t*t*t - 1)
}

func easeQuartInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t
	}
	t -= 2
	return -0.5 * (t*t*t*t - 2)
}

func easeQuintIn(t float64) float64 { return t * t * t * t * t }

func easeQuintOut(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

func easeQuintInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t*t*t + 2)
}

// Expo. The 2^(10(t-1)) kernel never reaches 0 or 1 on its own.

func easeExpoIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, 10*(t-1))
}

func easeExpoOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, -10*t) + 1
}

func easeExpoInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(2, 10*(t-1))
	}
	t--
	return 0.5 * (-math.Pow(2, -10*t) + 2)
}

// Circ

func easeCircIn(t float64) float64 {
	return -(math.Sqrt(1-t*t) - 1)
}

func easeCircOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

func easeCircInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return -0.5 * (math.Sqrt(1-t*t) - 1)
	}
	t -= 2
	return 0.5 * (math.Sqrt(1-t*t) + 1)
}

// Back

const (
	backOvershoot      = 1.70158
	backInOutOvershoot = backOvershoot * 1.525
)

func easeBackIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const s = backOvershoot
	return t * t * ((s+1)*t - s)
}

func easeBackOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const s = backOvershoot
	t--
	return t*t*((s+1)*t+s) + 1
}

func easeBackInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const s = backInOutOvershoot
	t *= 2
	if t < 1 {
		return 0.5 * (t * t * ((s+1)*t - s))
	}
	t -= 2
	return 0.5 * (t*t*((s+1)*t+s) + 2)
}

// Elastic

const (
	elasticPeriod      = 0.3
	elasticInOutPeriod = elasticPeriod * 1.5
)

func easeElasticIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const p = elasticPeriod
	const s = p / 4
	t--
	return -(math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
}

func easeElasticOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const p = elasticPeriod
	const s = p / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

func easeElasticInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const p = elasticInOutPeriod
	s := p / (2 * math.Pi) * math.Asin(1)
	t *= 2
	if t < 1 {
		t--
		return -0.5 * (math.Pow(2, 10*t) * math.Sin((t-s)*(2*math.Pi)/p))
	}
	t--
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p)*0.5 + 1
}

// Bounce

func easeBounceIn(t float64) float64 {
	return 1 - bounceOut(1-t)
}

func easeBounceOut(t float64) float64 {
	return bounceOut(t)
}

func easeBounceInOut(t float64) float64 {
	if t < 0.5 {
		return easeBounceIn(t*2) * 0.5
	}
	return bounceOut(t*2-1)*0.5 + 0.5
}

// bounceOut is the four-segment parabola shared by the bounce family.
func bounceOut(t float64) float64 {
	const k = 7.5625
	switch {
	case t == 1:
		return 1
	case t < 1/2.75:
		return k * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return k*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return k*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return k*t*t + 0.984375
	}
}
