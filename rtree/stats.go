package rtree

import (
	"fmt"
	"io"
	"strings"
)

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes  int // total node count
	Leaves int
	Points int
	Height int // 1 for a single leaf
}

// Describe walks the subtree below n once and collects its statistics.
func Describe(n Node) Stats {
	var st Stats
	Walk(n, func(node Node, _, depth int) bool {
		st.Nodes++
		st.Height = max(st.Height, depth+1)
		if leaf, ok := node.(*Leaf); ok {
			st.Leaves++
			st.Points += leaf.Len()
		}
		return true
	})
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d points=%d height=%d", st.Nodes, st.Leaves, st.Points, st.Height)
}

// Dump writes an indented, human-readable rendering of the subtree below n
// (for debugging purposes).
func Dump(w io.Writer, n Node) error {
	var err error
	Walk(n, func(node Node, pos, depth int) bool {
		indent := strings.Repeat("  ", depth)
		_, err = fmt.Fprintf(w, "%sNode #%d (leaf=%t, count=%d, MBR=%v)\n",
			indent, pos, node.IsLeaf(), node.Len(), node.Box())
		if err != nil {
			return false
		}
		if leaf, ok := node.(*Leaf); ok {
			for _, p := range leaf.points {
				if _, err = fmt.Fprintf(w, "%s  Point %v\n", indent, p); err != nil {
					return false
				}
			}
		}
		return true
	})
	return err
}
