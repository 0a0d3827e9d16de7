package flat

import (
	"fmt"

	"github.com/npillmayer/pimrtree/geom"
)

// Check validates the layout of a flattened tree: record occupancy within
// capacity, child positions strictly after their parent with the first child
// directly following it, every record but the root referenced exactly once,
// and boxes that are the exact bounds of their entries.
func (t *Tree) Check() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: no records", ErrInvalidTree)
	}
	refs := make([]int, len(t.nodes))
	for pos := range t.nodes {
		n := &t.nodes[pos]
		if n.Count() == 0 {
			return fmt.Errorf("%w: record #%d is empty", ErrInvalidTree, pos)
		}
		if n.Count() > t.capacity {
			return fmt.Errorf("%w: record #%d holds %d entries, capacity is %d",
				ErrInvalidTree, pos, n.Count(), t.capacity)
		}
		var box geom.Box
		if n.Leaf {
			if n.Children != nil {
				return fmt.Errorf("%w: leaf #%d has children", ErrInvalidTree, pos)
			}
			box = geom.BoxOf(n.Points...)
		} else {
			if n.Points != nil {
				return fmt.Errorf("%w: inner record #%d has points", ErrInvalidTree, pos)
			}
			if n.Children[0] != pos+1 {
				return fmt.Errorf("%w: first child of #%d is at %d", ErrInvalidTree, pos, n.Children[0])
			}
			box = geom.EmptyBox()
			for _, c := range n.Children {
				if c <= pos || c >= len(t.nodes) {
					return fmt.Errorf("%w: record #%d links to position %d", ErrInvalidTree, pos, c)
				}
				refs[c]++
				box = box.Union(t.nodes[c].Box)
			}
		}
		if box != n.Box {
			return fmt.Errorf("%w: record #%d has box %v, entries span %v", ErrInvalidTree, pos, n.Box, box)
		}
	}
	for pos := 1; pos < len(refs); pos++ {
		if refs[pos] != 1 {
			return fmt.Errorf("%w: record #%d is referenced %d times", ErrInvalidTree, pos, refs[pos])
		}
	}
	return nil
}
