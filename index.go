package pimrtree

import (
	"fmt"
	"sync"

	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/rtree"
	"github.com/npillmayer/pimrtree/unit"
)

// Index is an R-tree over a point set, prepared for distribution over
// execution units. An Index is immutable and safe for concurrent queries.
type Index struct {
	cfg    Config
	points []geom.Point
	root   rtree.Node
	once   sync.Once // guards assignment
	assign []Assignment
	err    error
}

// New builds an index over points. points is Z-sorted in place and kept by
// the index; clients must not modify it afterwards.
func New(points []geom.Point, cfg Config) (*Index, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	geom.ZSort(points, cfg.Morton)
	root, err := rtree.BuildAll(points, cfg.Tree)
	if err != nil {
		return nil, err
	}
	if err := rtree.Check(root); err != nil {
		return nil, err
	}
	T().Infof("index built over %d points: %v", len(points), rtree.Describe(root))
	return &Index{cfg: cfg, points: points, root: root}, nil
}

// Config returns the normalized configuration of ix.
func (ix *Index) Config() Config {
	return ix.cfg
}

// Root returns the root of the host's pointer tree.
func (ix *Index) Root() rtree.Node {
	return ix.root
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	return len(ix.points)
}

// Contains answers a query on the host, without involving any execution unit.
func (ix *Index) Contains(q geom.Point) bool {
	return rtree.Contains(ix.root, q)
}

// Assignment is the share of the tree one execution unit receives.
type Assignment struct {
	Unit      uint64
	Subtree   rtree.Node // independent copy; nil for an idle unit
	Positions []int      // pre-order positions of the copied subtrees in the host tree
	Nodes     int        // number of flat records
	Blob      []byte     // encoded flat tree
}

// Idle is true for a unit which did not receive any part of the tree.
func (a Assignment) Idle() bool {
	return a.Subtree == nil
}

// Assign splits the root's children among the execution units. Children are
// handed out in order, in contiguous groups whose sizes differ by at most one.
// A unit receiving several children gets them below a new inner node.
// If the root is a leaf, it goes whole to unit 0 and all other units are idle.
//
// Every assigned part is an independent deep copy, flattened and encoded.
// The result is computed once and shared by all callers.
func (ix *Index) Assign() ([]Assignment, error) {
	ix.once.Do(func() {
		ix.assign, ix.err = ix.distribute()
	})
	return ix.assign, ix.err
}

func (ix *Index) distribute() ([]Assignment, error) {
	assignments := make([]Assignment, ix.cfg.Units)
	for i := range assignments {
		assignments[i].Unit = uint64(i)
	}
	inner, ok := ix.root.(*rtree.Inner)
	if !ok {
		if err := ix.seal(&assignments[0], rtree.Copy(ix.root), []int{0}); err != nil {
			return nil, err
		}
		return assignments, nil
	}
	ranges, err := unit.Partition(inner.Len(), ix.cfg.Units)
	if err != nil {
		return nil, err
	}
	cursor := 1 // pre-order position of the next root child
	for u, r := range ranges {
		if r.Len() == 0 {
			continue
		}
		parts := make([]rtree.Node, 0, r.Len())
		positions := make([]int, 0, r.Len())
		for i := r.Lo; i < r.Hi; i++ {
			part, err := rtree.Extract(ix.root, cursor)
			if err != nil {
				return nil, err
			}
			assert(part.Box() == inner.Child(i).Box(), "extracted subtree is not a root child")
			parts = append(parts, part)
			positions = append(positions, cursor)
			cursor += rtree.Count(part)
		}
		var sub rtree.Node = parts[0]
		if len(parts) > 1 {
			sub = rtree.NewInner(parts...)
		}
		if err := ix.seal(&assignments[u], sub, positions); err != nil {
			return nil, err
		}
	}
	return assignments, nil
}

func (ix *Index) seal(a *Assignment, sub rtree.Node, positions []int) error {
	ft, err := flat.Flatten(sub, ix.cfg.Flat)
	if err != nil {
		return fmt.Errorf("unit %d: %w", a.Unit, err)
	}
	blob, err := ft.MarshalBinary()
	if err != nil {
		return fmt.Errorf("unit %d: %w", a.Unit, err)
	}
	a.Subtree, a.Positions, a.Nodes, a.Blob = sub, positions, ft.Len(), blob
	T().Debugf("unit %d gets subtrees at %v, %d records, %d bytes", a.Unit, positions, a.Nodes, len(blob))
	return nil
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
