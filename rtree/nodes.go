package rtree

import (
	"github.com/npillmayer/pimrtree/geom"
)

// Node is either a *Leaf or an *Inner. A node exclusively owns its points or
// children; nodes are never shared between trees.
type Node interface {
	IsLeaf() bool
	// Box is the exact bounding box of everything below the node.
	Box() geom.Box
	// Len is the node's occupancy: points of a leaf, children of an inner node.
	Len() int
	sealed()
}

// Leaf holds between 1 and BundleCapacity points.
type Leaf struct {
	box    geom.Box
	points []geom.Point
}

func (l *Leaf) IsLeaf() bool        { return true }
func (l *Leaf) Box() geom.Box       { return l.box }
func (l *Leaf) Len() int            { return len(l.points) }
func (l *Leaf) sealed()             {}
func (l *Leaf) At(i int) geom.Point { return l.points[i] }

// Points returns the leaf's points. The slice is owned by the leaf and must
// not be modified.
func (l *Leaf) Points() []geom.Point { return l.points }

// Inner holds between MinFanout and MaxFanout children.
type Inner struct {
	box      geom.Box
	children []Node
}

func (n *Inner) IsLeaf() bool     { return false }
func (n *Inner) Box() geom.Box    { return n.box }
func (n *Inner) Len() int         { return len(n.children) }
func (n *Inner) sealed()          {}
func (n *Inner) Child(i int) Node { return n.children[i] }

// Children returns the child nodes. The slice is owned by the node and must
// not be modified.
func (n *Inner) Children() []Node { return n.children }

// NewLeaf materializes a leaf over a private copy of points and computes its
// box by folding every point into the empty box.
func NewLeaf(points ...geom.Point) *Leaf {
	assert(len(points) > 0, "NewLeaf called without points")
	leaf := &Leaf{
		points: make([]geom.Point, len(points)),
		box:    geom.EmptyBox(),
	}
	copy(leaf.points, points)
	for _, p := range leaf.points {
		leaf.box = leaf.box.Extend(p)
	}
	return leaf
}

// NewInner materializes an inner node over children and computes its box as
// the union of the children's boxes. The children become owned by the new node.
func NewInner(children ...Node) *Inner {
	assert(len(children) > 0, "NewInner called without children")
	inner := &Inner{
		children: make([]Node, len(children)),
		box:      geom.EmptyBox(),
	}
	copy(inner.children, children)
	for _, child := range inner.children {
		assert(child != nil, "NewInner called with nil child")
		inner.box = inner.box.Union(child.Box())
	}
	return inner
}
