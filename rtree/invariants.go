package rtree

import (
	"fmt"

	"github.com/npillmayer/pimrtree/geom"
)

// Check validates structural tree invariants:
//   - every leaf holds at least one point and its box is the exact union of
//     its points,
//   - every inner node has at least one child and its box is the exact union
//     of its children's boxes.
//
// There is no slack: a box that is larger than necessary is an error.
func Check(n Node) error {
	_, err := checkNode(n, 0)
	return err
}

// CheckOccupancy validates the occupancy bounds of cfg in addition to Check:
// leaves hold at most BundleCapacity points and inner nodes hold between
// MinFanout and MaxFanout children. The lower bound is not enforced for the
// root.
func CheckOccupancy(n Node, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	cfg = cfg.normalized()
	if err := Check(n); err != nil {
		return err
	}
	var err error
	Walk(n, func(node Node, pos, depth int) bool {
		switch node := node.(type) {
		case *Leaf:
			if node.Len() > cfg.BundleCapacity {
				err = fmt.Errorf("%w: leaf at %d holds %d points, bundle capacity is %d",
					ErrInvalidTree, pos, node.Len(), cfg.BundleCapacity)
			}
		case *Inner:
			if node.Len() > cfg.MaxFanout {
				err = fmt.Errorf("%w: inner node at %d has %d children, max fanout is %d",
					ErrInvalidTree, pos, node.Len(), cfg.MaxFanout)
			} else if depth > 0 && node.Len() < cfg.MinFanout {
				err = fmt.Errorf("%w: inner node at %d has %d children, min fanout is %d",
					ErrInvalidTree, pos, node.Len(), cfg.MinFanout)
			}
		}
		return err == nil
	})
	return err
}

func checkNode(n Node, depth int) (height int, err error) {
	switch n := n.(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil node at depth %d", ErrInvalidTree, depth)
	case *Leaf:
		if n == nil {
			return 0, fmt.Errorf("%w: nil leaf at depth %d", ErrInvalidTree, depth)
		}
		if len(n.points) == 0 {
			return 0, fmt.Errorf("%w: empty leaf at depth %d", ErrInvalidTree, depth)
		}
		if want := geom.BoxOf(n.points...); n.box != want {
			return 0, fmt.Errorf("%w: leaf box %v at depth %d, exact box is %v",
				ErrInvalidTree, n.box, depth, want)
		}
		return 1, nil
	case *Inner:
		if n == nil {
			return 0, fmt.Errorf("%w: nil inner node at depth %d", ErrInvalidTree, depth)
		}
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: inner node without children at depth %d", ErrInvalidTree, depth)
		}
		union := geom.EmptyBox()
		for i, child := range n.children {
			if child == nil {
				return 0, fmt.Errorf("%w: nil child at index %d, depth %d", ErrInvalidTree, i, depth)
			}
			h, err := checkNode(child, depth+1)
			if err != nil {
				return 0, err
			}
			height = max(height, h)
			union = union.Union(child.Box())
		}
		if n.box != union {
			return 0, fmt.Errorf("%w: inner box %v at depth %d, union of children is %v",
				ErrInvalidTree, n.box, depth, union)
		}
		return height + 1, nil
	}
	return 0, fmt.Errorf("%w: unknown node type %T", ErrInvalidTree, n)
}
