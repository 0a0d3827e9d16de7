package rtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the structure of the subtree below n in Graphviz DOT format
// (for debugging purposes). Node IDs are pre-order positions, which makes the
// output line up with flattened arrays of the same subtree.
func ToDot(w io.Writer, n Node) error {
	var nodelist, edgelist strings.Builder
	var stack []int // pre-order positions of the open ancestors
	Walk(n, func(node Node, pos, depth int) bool {
		stack = append(stack[:depth], pos)
		if depth > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", stack[depth-1], pos)
		}
		styles := nodeDotStyles(node.IsLeaf())
		bb := node.Box()
		label := fmt.Sprintf("#%d n=%d\\n[%.1f,%.1f]-[%.1f,%.1f]", pos, node.Len(),
			bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", pos, label, styles)
		return true
	})
	for _, part := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, part); err != nil {
			tracer().Errorf("rtree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
