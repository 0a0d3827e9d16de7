package flat

import (
	"github.com/npillmayer/pimrtree/geom"
)

// Node is one record of a flattened tree.
//
// Exactly one of Points and Children is set, depending on Leaf. Children are
// positions into the same Tree. In memory, Points and Children are sized to
// the record's entry count. The fixed layout, with every record padded to
// Capacity slots, exists only in the encoded blob (see MarshalBinary and
// RecordBytes).
type Node struct {
	Leaf     bool
	Box      geom.Box
	Points   []geom.Point // leaf entries
	Children []int        // positions of child records
}

// Count is the record's entry count.
func (n *Node) Count() int {
	if n.Leaf {
		return len(n.Points)
	}
	return len(n.Children)
}

// Tree is an arena of records in pre-order. Position 0 is the root.
// A Tree is immutable once built or decoded.
type Tree struct {
	capacity int
	nodes    []Node
}

// Len returns the number of records.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Capacity returns the number of entry slots per record.
func (t *Tree) Capacity() int {
	return t.capacity
}

// At returns the record at position pos. The record's slices are owned by the
// tree and must not be modified.
func (t *Tree) At(pos int) *Node {
	return &t.nodes[pos]
}
