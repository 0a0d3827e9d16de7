package flat

import (
	"fmt"

	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/rtree"
)

// Flatten lays out the subtree below root as a pre-order arena.
//
// The root gets position 0, and the first child of every inner node is placed
// directly after its parent. Every node's occupancy is checked against
// cfg.Capacity; the number of records is checked against cfg.MaxNodes.
// The source tree is not modified and does not share memory with the result.
func Flatten(root rtree.Node, cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: nothing to flatten", ErrInvalidTree)
	}
	total := rtree.Count(root)
	if cfg.MaxNodes > 0 && total > cfg.MaxNodes {
		return nil, fmt.Errorf("%w: tree has %d nodes, budget is %d", ErrNodeBudget, total, cfg.MaxNodes)
	}
	f := flattener{
		cfg:   cfg,
		nodes: make([]Node, 0, total),
	}
	if _, err := f.place(root); err != nil {
		return nil, err
	}
	tracer().Debugf("flattened %d nodes with capacity %d", len(f.nodes), cfg.Capacity)
	return &Tree{capacity: cfg.Capacity, nodes: f.nodes}, nil
}

type flattener struct {
	cfg   Config
	nodes []Node
}

// place appends n and, recursively, its children. It returns n's position.
func (f *flattener) place(n rtree.Node) (int, error) {
	pos := len(f.nodes)
	if n.Len() > f.cfg.Capacity {
		return pos, fmt.Errorf("%w: node #%d holds %d entries, capacity is %d",
			ErrCapacityExceeded, pos, n.Len(), f.cfg.Capacity)
	}
	if f.cfg.MaxNodes > 0 && pos >= f.cfg.MaxNodes {
		return pos, fmt.Errorf("%w: budget of %d nodes", ErrNodeBudget, f.cfg.MaxNodes)
	}
	f.nodes = append(f.nodes, Node{Box: n.Box()})
	switch n := n.(type) {
	case *rtree.Leaf:
		points := make([]geom.Point, n.Len())
		copy(points, n.Points())
		f.nodes[pos].Leaf = true
		f.nodes[pos].Points = points
	case *rtree.Inner:
		children := make([]int, n.Len())
		for i, child := range n.Children() {
			cpos, err := f.place(child)
			if err != nil {
				return pos, err
			}
			children[i] = cpos
		}
		f.nodes[pos].Children = children
	}
	return pos, nil
}

// Contains reports whether q is stored in the subtree whose root record is at
// position pos. It prunes exactly like rtree.Contains, so both forms always
// agree. An out-of-range position contains nothing.
func (t *Tree) Contains(pos int, q geom.Point) bool {
	if pos < 0 || pos >= t.Len() {
		return false
	}
	n := &t.nodes[pos]
	if !n.Box.Contains(q) {
		return false
	}
	if n.Leaf {
		for _, p := range n.Points {
			if p.Equal(q) {
				return true
			}
		}
		return false
	}
	for _, c := range n.Children {
		if t.Contains(c, q) {
			return true
		}
	}
	return false
}
