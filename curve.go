package tween

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyCurve is returned when a custom curve has no keyframes.
	ErrEmptyCurve = errors.New("tween: curve has no keyframes")
	// ErrUnsortedKeys is returned when keyframe times are not strictly increasing.
	ErrUnsortedKeys = errors.New("tween: curve keyframe times must be strictly increasing")
)

// Keyframe is one control point of a Curve. Tangents are slopes (value per
// unit of time) on either side of the key.
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in,omitempty"`
	OutTangent float64 `yaml:"out,omitempty"`
}

// Curve is an authored piecewise cubic Hermite curve used by the Custom
// easing kind. Outside its key range it holds the first or last value. Its
// output is not clamped.
type Curve struct {
	Name string     `yaml:"name,omitempty"`
	Keys []Keyframe `yaml:"keys"`
}

// NewCurve creates a curve from keys, sorted by time.
func NewCurve(keys ...Keyframe) *Curve {
	c := &Curve{Keys: append([]Keyframe(nil), keys...)}
	sort.SliceStable(c.Keys, func(i, j int) bool { return c.Keys[i].Time < c.Keys[j].Time })
	return c
}

// LinearCurve is a straight line from (t0, v0) to (t1, v1).
func LinearCurve(t0, v0, t1, v1 float64) *Curve {
	slope := 0.0
	if t1 != t0 {
		slope = (v1 - v0) / (t1 - t0)
	}
	return NewCurve(
		Keyframe{Time: t0, Value: v0, InTangent: slope, OutTangent: slope},
		Keyframe{Time: t1, Value: v1, InTangent: slope, OutTangent: slope},
	)
}

// EaseInOutCurve goes from (t0, v0) to (t1, v1) with flat tangents at both ends.
func EaseInOutCurve(t0, v0, t1, v1 float64) *Curve {
	return NewCurve(
		Keyframe{Time: t0, Value: v0},
		Keyframe{Time: t1, Value: v1},
	)
}

// Validate checks that the curve has keys in strictly increasing time order.
func (c *Curve) Validate() error {
	if c == nil || len(c.Keys) == 0 {
		return ErrEmptyCurve
	}
	for i := 1; i < len(c.Keys); i++ {
		if !(c.Keys[i].Time > c.Keys[i-1].Time) {
			return ErrUnsortedKeys
		}
	}
	return nil
}

// Evaluate samples the curve at t. An empty curve evaluates to 0 and a NaN
// t evaluates to NaN.
func (c *Curve) Evaluate(t float64) float64 {
	n := len(c.Keys)
	switch {
	case n == 0:
		return 0
	case math.IsNaN(t):
		return t
	case t <= c.Keys[0].Time:
		return c.Keys[0].Value
	case t >= c.Keys[n-1].Time:
		return c.Keys[n-1].Value
	}

	// First key strictly after t; t lies in [Keys[i-1].Time, Keys[i].Time).
	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time > t })
	return hermite(c.Keys[i-1], c.Keys[i], t)
}

func hermite(k0, k1 Keyframe, t float64) float64 {
	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// Bake samples the curve at samples+1 evenly spaced points across [0, 1] and
// returns a Func that linearly interpolates the table. Inputs outside [0, 1]
// hold the end values; NaN stays NaN.
func (c *Curve) Bake(samples int) Func {
	if samples < 1 {
		samples = 1
	}
	lut := make([]float64, samples+1)
	for i := range lut {
		lut[i] = c.Evaluate(float64(i) / float64(samples))
	}

	return func(t float64) float64 {
		switch {
		case math.IsNaN(t):
			return t
		case t <= 0:
			return lut[0]
		case t >= 1:
			return lut[samples]
		}
		x := t * float64(samples)
		i := int(x)
		if i >= samples {
			return lut[samples]
		}
		return Lerp(lut[i], lut[i+1], x-float64(i))
	}
}
