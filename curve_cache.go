package tween

import (
	"encoding/binary"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// DefaultBakeSamples is the table size used by CurveCache.
const DefaultBakeSamples = 256

// CurveCache keeps baked lookup tables of named custom curves so that
// starting many drivers with the same authored curve evaluates it once.
// Entries are keyed by name and keyframes, so curves sharing a name never
// share a table. Named kinds and unnamed curves are resolved directly. Safe
// for concurrent use.
type CurveCache struct {
	samples int
	baked   *cache.Cache
}

type bakedCurve struct {
	keys []Keyframe
	fn   Func
}

// NewCurveCache creates a cache whose entries expire ttl after they were
// baked. A ttl of zero keeps entries until Flush.
func NewCurveCache(ttl time.Duration) *CurveCache {
	exp := ttl
	if exp <= 0 {
		exp = cache.NoExpiration
	}
	return &CurveCache{
		samples: DefaultBakeSamples,
		baked:   cache.New(exp, 2*exp),
	}
}

// Resolve returns the easing function for e, baking and caching named custom
// curves.
func (cc *CurveCache) Resolve(e Easing) (Func, error) {
	if e.Kind != Custom || e.Curve == nil || e.Curve.Name == "" {
		return e.Resolve()
	}
	c := e.Curve
	if err := c.Validate(); err != nil {
		return nil, wrapCurveErr(c, err)
	}

	key := cc.key(c)
	if v, ok := cc.baked.Get(key); ok {
		// Guards against a fingerprint collision.
		if b := v.(bakedCurve); slices.Equal(b.keys, c.Keys) {
			return b.fn, nil
		}
	}

	b := bakedCurve{keys: slices.Clone(c.Keys), fn: c.Bake(cc.samples)}
	cc.baked.SetDefault(key, b)
	return b.fn, nil
}

// Forget drops every baked table of curves with the given name, e.g. after
// one was edited.
func (cc *CurveCache) Forget(name string) {
	prefix := namePrefix(name)
	for key := range cc.baked.Items() {
		if strings.HasPrefix(key, prefix) {
			cc.baked.Delete(key)
		}
	}
}

// Len returns the number of cached tables, expired ones included until the
// janitor runs.
func (cc *CurveCache) Len() int {
	return cc.baked.ItemCount()
}

// Flush drops every cached table.
func (cc *CurveCache) Flush() {
	cc.baked.Flush()
}

func (cc *CurveCache) key(c *Curve) string {
	h := xxhash.New()
	var buf [8]byte
	for _, k := range c.Keys {
		for _, f := range [...]float64{k.Time, k.Value, k.InTangent, k.OutTangent} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
			h.Write(buf[:])
		}
	}
	return namePrefix(c.Name) + strconv.Itoa(cc.samples) + "/" + strconv.FormatUint(h.Sum64(), 16)
}

// namePrefix quotes the name so that no name is a prefix of another's keys.
func namePrefix(name string) string {
	return strconv.Quote(name) + "/"
}
