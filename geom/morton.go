package geom

import (
	"cmp"
	"math"
	"slices"
)

// MortonConfig controls how float coordinates are mapped to the integer grid
// the Z-order key is computed on.
//
// The key is lossy on purpose: it only establishes an ordering, it never takes
// part in geometry. With the default Scale of 1, fractional parts of the
// coordinates are dropped. Larger scales let fractional digits participate in
// the ordering, at the price of saturating earlier for large coordinates.
type MortonConfig struct {
	Scale float64 // multiplier applied before truncation; 0 means 1
}

// DefaultMortonConfig truncates raw coordinates.
func DefaultMortonConfig() MortonConfig {
	return MortonConfig{Scale: 1}
}

func (cfg MortonConfig) normalized() MortonConfig {
	if cfg.Scale == 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		cfg.Scale = 1
	}
	return cfg
}

// MortonKey computes the Z-order key of p: both coordinates are truncated to
// 32-bit integers, then their bits are interleaved with x on even and y on odd
// bit positions.
func MortonKey(p Point, cfg MortonConfig) uint64 {
	cfg = cfg.normalized()
	return Interleave(gridOrdinal(p.X*cfg.Scale), gridOrdinal(p.Y*cfg.Scale))
}

// Interleave merges the bits of x (even positions) and y (odd positions).
func Interleave(x, y uint32) uint64 {
	return spread(x) | spread(y)<<1
}

// gridOrdinal truncates v toward zero and maps the resulting int32 to an
// unsigned value of the same order. Values beyond int32 saturate.
func gridOrdinal(v float64) uint32 {
	var i int32
	switch {
	case math.IsNaN(v):
		i = 0
	case v >= math.MaxInt32:
		i = math.MaxInt32
	case v <= math.MinInt32:
		i = math.MinInt32
	default:
		i = int32(v)
	}
	return uint32(i) ^ 0x80000000
}

// spread inserts a zero bit between each of the 32 bits of v.
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | x<<16) & 0x0000ffff0000ffff
	x = (x | x<<8) & 0x00ff00ff00ff00ff
	x = (x | x<<4) & 0x0f0f0f0f0f0f0f0f
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

type zpoint struct {
	key uint64
	p   Point
}

// ZSort reorders points in place, ascending by Morton key. Points with equal
// keys end up in unspecified relative order.
func ZSort(points []Point, cfg MortonConfig) {
	if len(points) < 2 {
		return
	}
	keyed := make([]zpoint, len(points))
	for i, p := range points {
		keyed[i] = zpoint{key: MortonKey(p, cfg), p: p}
	}
	slices.SortFunc(keyed, func(a, b zpoint) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range keyed {
		points[i] = keyed[i].p
	}
}

// IsZSorted reports whether consecutive Morton keys are non-decreasing.
func IsZSorted(points []Point, cfg MortonConfig) bool {
	for i := 1; i < len(points); i++ {
		if MortonKey(points[i-1], cfg) > MortonKey(points[i], cfg) {
			return false
		}
	}
	return true
}
