package rtree

import (
	"github.com/npillmayer/pimrtree/geom"
)

// Contains reports whether q is exactly one of the points stored below n.
//
// Subtrees whose box does not contain q are pruned; the box test only rules
// out subtrees, a match always requires float equality with a stored point.
func Contains(n Node, q geom.Point) bool {
	if n == nil || !n.Box().Contains(q) {
		return false
	}
	switch n := n.(type) {
	case *Leaf:
		for _, p := range n.points {
			if p.Equal(q) {
				return true
			}
		}
	case *Inner:
		for _, child := range n.children {
			if Contains(child, q) {
				return true
			}
		}
	}
	return false
}
