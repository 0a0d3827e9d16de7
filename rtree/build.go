package rtree

import (
	"fmt"

	"github.com/npillmayer/pimrtree/geom"
)

// span is a closed index range [lo, hi] into the point slice.
type span struct {
	lo, hi int
}

func (s span) size() int { return s.hi - s.lo + 1 }

// BuildAll bulk-loads a tree over all points. Points are expected to be
// Morton-sorted (see geom.ZSort), otherwise leaves will not be spatially
// clustered; the tree is correct either way.
func BuildAll(points []geom.Point, cfg Config) (Node, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	return Build(points, 0, len(points)-1, cfg)
}

// Build bulk-loads a tree from the closed range points[low..high].
//
// A range of at most BundleCapacity points becomes a single leaf. Larger
// ranges become an inner node whose children partition the range into
// contiguous, non-overlapping sub-ranges according to cfg.Policy, each built
// recursively.
func Build(points []geom.Point, low, high int, cfg Config) (Node, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if low > high {
		return nil, fmt.Errorf("%w: low %d > high %d", ErrInvalidRange, low, high)
	}
	if low < 0 || high >= len(points) {
		return nil, fmt.Errorf("%w: [%d, %d] outside of %d points", ErrInvalidRange, low, high, len(points))
	}
	b := builder{cfg: cfg.normalized(), points: points}
	root := b.build(span{lo: low, hi: high})
	tracer().Debugf("rtree: built tree over %d points, %d nodes", high-low+1, Count(root))
	return root, nil
}

type builder struct {
	cfg    Config
	points []geom.Point
}

func (b *builder) build(s span) Node {
	if s.size() <= b.cfg.BundleCapacity {
		return NewLeaf(b.points[s.lo : s.hi+1]...)
	}
	var parts []span
	switch b.cfg.Policy {
	case PolicyUniform:
		parts = uniformSplit(s, b.cfg.MaxFanout)
	default:
		parts = boundedSplit(s, b.cfg.BundleCapacity, b.cfg.MinFanout, b.cfg.MaxFanout)
	}
	inner := &Inner{
		children: make([]Node, 0, len(parts)),
		box:      geom.EmptyBox(),
	}
	for _, part := range parts {
		child := b.build(part)
		inner.children = append(inner.children, child)
		inner.box = inner.box.Union(child.Box())
	}
	return inner
}

// uniformSplit cuts s into min(fanout, size) parts of size/count points each,
// the last part absorbing the remainder.
func uniformSplit(s span, fanout int) []span {
	n := s.size()
	count := min(fanout, n)
	size := n / count
	parts := make([]span, count)
	for i := range parts {
		lo := s.lo + i*size
		hi := lo + size - 1
		if i == count-1 {
			hi = s.hi
		}
		parts[i] = span{lo: lo, hi: hi}
	}
	return parts
}

// boundedSplit cuts s into max(ceil(size/bundle), minFanout) parts, at most
// maxFanout, handing the remainder out one point at a time to the first parts.
func boundedSplit(s span, bundle, minFanout, maxFanout int) []span {
	n := s.size()
	count := (n + bundle - 1) / bundle
	count = max(count, minFanout)
	count = min(count, maxFanout, n)
	assert(count > 1, "bounded split must produce at least two children")
	base, extra := n/count, n%count
	parts := make([]span, count)
	start := s.lo
	for i := range parts {
		end := start + base - 1
		if i < extra {
			end++
		}
		parts[i] = span{lo: start, hi: end}
		start = end + 1
	}
	assert(start == s.hi+1, "bounded split lost points")
	return parts
}
