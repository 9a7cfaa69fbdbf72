package tween

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for kind names or numbers outside the catalog.
	ErrUnknownKind = errors.New("tween: unknown easing kind")
	// ErrMissingCurve is returned when a Custom selection carries no curve.
	ErrMissingCurve = errors.New("tween: custom easing has no curve")
)

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText accepts a kind name, case-insensitively, or its number.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(text)
	if kind, ok := ParseKind(s); ok {
		*k = kind
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && Kind(n).Valid() {
		*k = Kind(n)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Easing is a persisted easing selection: a curve kind plus, for Custom, the
// authored curve.
type Easing struct {
	Kind  Kind   `yaml:"kind"`
	Curve *Curve `yaml:"curve,omitempty"`
}

// EasingOf selects a named kind.
func EasingOf(kind Kind) Easing {
	return Easing{Kind: kind}
}

// CustomEasing selects an authored curve.
func CustomEasing(curve *Curve) Easing {
	return Easing{Kind: Custom, Curve: curve}
}

// Validate checks that the selection resolves.
func (e Easing) Validate() error {
	_, err := e.Resolve()
	return err
}

// Resolve returns the easing function of the selection.
func (e Easing) Resolve() (Func, error) {
	switch {
	case !e.Kind.Valid():
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(e.Kind))
	case e.Kind != Custom:
		return funcs[e.Kind], nil
	case e.Curve == nil:
		return nil, ErrMissingCurve
	}
	if err := e.Curve.Validate(); err != nil {
		return nil, wrapCurveErr(e.Curve, err)
	}
	return e.Curve.Evaluate, nil
}

// Func is Resolve falling back to Linear when the selection is invalid.
func (e Easing) Func() Func {
	fn, err := e.Resolve()
	if err != nil {
		return easeLinear
	}
	return fn
}

func (e Easing) String() string {
	if e.Kind == Custom && e.Curve != nil && e.Curve.Name != "" {
		return "Custom(" + e.Curve.Name + ")"
	}
	return e.Kind.String()
}

func wrapCurveErr(c *Curve, err error) error {
	if c != nil && c.Name != "" {
		return fmt.Errorf("tween: curve %q: %w", c.Name, err)
	}
	return err
}

// ParseEasing converts a loosely typed value, as found in decoded JSON or YAML
// documents, into an Easing. It accepts an Easing, a Kind, a kind name, a
// kind number, or a map with "kind" and an optional "curve" entry holding
// "name" and a "keys" list of {time, value, in, out} maps.
func ParseEasing(v any) (Easing, error) {
	switch x := v.(type) {
	case Easing:
		return x, x.Validate()
	case *Easing:
		if x == nil {
			return Easing{}, ErrUnknownKind
		}
		return *x, x.Validate()
	case Kind:
		e := EasingOf(x)
		return e, e.Validate()
	case string:
		var k Kind
		if err := k.UnmarshalText([]byte(x)); err != nil {
			return Easing{}, err
		}
		e := EasingOf(k)
		return e, e.Validate()
	case map[string]any, map[any]any:
		return parseEasingMap(x)
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return Easing{}, fmt.Errorf("%w: %v", ErrUnknownKind, v)
	}
	e := EasingOf(Kind(n))
	return e, e.Validate()
}

func parseEasingMap(v any) (Easing, error) {
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return Easing{}, err
	}

	kindVal, ok := m["kind"]
	if !ok {
		return Easing{}, fmt.Errorf("%w: missing kind", ErrUnknownKind)
	}
	e, err := ParseEasing(kindVal)
	if err != nil && !errors.Is(err, ErrMissingCurve) {
		return Easing{}, err
	}

	if raw, ok := m["curve"]; ok && raw != nil {
		curve, err := parseCurve(raw)
		if err != nil {
			return Easing{}, err
		}
		e.Curve = curve
	}
	return e, e.Validate()
}

func parseCurve(v any) (*Curve, error) {
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("tween: curve: %w", err)
	}

	rawKeys, err := cast.ToSliceE(m["keys"])
	if err != nil {
		return nil, fmt.Errorf("tween: curve keys: %w", err)
	}

	keys := make([]Keyframe, 0, len(rawKeys))
	for i, rk := range rawKeys {
		km, err := cast.ToStringMapE(rk)
		if err != nil {
			return nil, fmt.Errorf("tween: curve key %d: %w", i, err)
		}
		var k Keyframe
		for name, dst := range map[string]*float64{
			"time": &k.Time, "value": &k.Value, "in": &k.InTangent, "out": &k.OutTangent,
		} {
			raw, ok := km[name]
			if !ok {
				continue
			}
			if *dst, err = cast.ToFloat64E(raw); err != nil {
				return nil, fmt.Errorf("tween: curve key %d %s: %w", i, name, err)
			}
		}
		keys = append(keys, k)
	}

	return &Curve{Name: cast.ToString(m["name"]), Keys: keys}, nil
}

// Presets is a named set of easing selections, typically loaded from a
// configuration file:
//
//	pop:
//	  kind: BackOut
//	wobble:
//	  kind: Custom
//	  curve:
//	    name: wobble
//	    keys:
//	      - {time: 0, value: 0, out: 3}
//	      - {time: 1, value: 1}
type Presets map[string]Easing

// ParsePresets decodes and validates a YAML presets document.
func ParsePresets(data []byte) (Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("tween: parse presets: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPresets reads a YAML presets document from r.
func LoadPresets(r io.Reader) (Presets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tween: read presets: %w", err)
	}
	return ParsePresets(data)
}

// Validate checks every preset, reporting the first failure in name order.
func (p Presets) Validate() error {
	for _, name := range p.Names() {
		if err := p[name].Validate(); err != nil {
			return fmt.Errorf("tween: preset %q: %w", name, err)
		}
	}
	return nil
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal encodes the presets as YAML.
func (p Presets) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
