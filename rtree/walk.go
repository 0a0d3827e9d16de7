package rtree

import (
	"fmt"

	"github.com/npillmayer/pimrtree/geom"
)

// Walk visits the subtree below n in pre-order (parent before children,
// children in slot order). pos is the pre-order position counted from 0 at n.
//
// Iteration stops early if fn returns false.
func Walk(n Node, fn func(node Node, pos, depth int) bool) {
	if n == nil || fn == nil {
		return
	}
	pos := 0
	walkNode(n, 0, &pos, fn)
}

func walkNode(n Node, depth int, pos *int, fn func(Node, int, int) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	if !fn(n, *pos, depth) {
		return false
	}
	*pos++
	if inner, ok := n.(*Inner); ok {
		for _, child := range inner.children {
			if !walkNode(child, depth+1, pos, fn) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of nodes in the subtree below n, including n.
// This is also the pre-order position just past n's subtree.
func Count(n Node) int {
	if n == nil {
		return 0
	}
	count := 1
	if inner, ok := n.(*Inner); ok {
		for _, child := range inner.children {
			count += Count(child)
		}
	}
	return count
}

// Copy returns a deep copy of the subtree below n. The copy shares no memory
// with n: mutating one can never affect the other.
func Copy(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		points := make([]geom.Point, len(n.points))
		copy(points, n.points)
		return &Leaf{box: n.box, points: points}
	case *Inner:
		children := make([]Node, len(n.children))
		for i, child := range n.children {
			children[i] = Copy(child)
		}
		return &Inner{box: n.box, children: children}
	}
	return nil
}

// Extract returns a deep copy of the subtree rooted at the node with pre-order
// position target, counting root as position 0.
//
// If target is not a valid position, Extract returns ErrSubtreeNotFound.
func Extract(root Node, target int) (Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrSubtreeNotFound)
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: negative position %d", ErrSubtreeNotFound, target)
	}
	var found Node
	Walk(root, func(n Node, pos, _ int) bool {
		if pos == target {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: position %d, tree has %d nodes", ErrSubtreeNotFound, target, Count(root))
	}
	return Copy(found), nil
}
