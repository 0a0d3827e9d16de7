package flat

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of the records reachable from the root,
// following child positions (for debugging purposes).
func (t *Tree) Dump(w io.Writer) error {
	if t.Len() == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return t.dump(w, 0, 0)
}

func (t *Tree) dump(w io.Writer, pos, depth int) error {
	n := &t.nodes[pos]
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%sRecord #%d (leaf=%t, count=%d, MBR=%v)\n",
		indent, pos, n.Leaf, n.Count(), n.Box); err != nil {
		return err
	}
	for _, p := range n.Points {
		if _, err := fmt.Fprintf(w, "%s  Point %v\n", indent, p); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := t.dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
