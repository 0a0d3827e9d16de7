/*
Package rtree provides the owned, pointer-linked bounding-box tree over a static
set of points.

The tree is bulk-loaded once from a Morton-sorted point slice and never mutated
afterwards. There is no insert, delete or rebalance; the only structural
operation besides building is extracting deep, independent copies of subtrees,
which is how a global tree is partitioned among execution units.

Current status:
  - distinct `Leaf` and `Inner` node variants behind a sealed `Node` interface,
  - two bulk-load policies (uniform fanout and bounded occupancy m/M),
  - pre-order walking, counting and subtree extraction,
  - exact point-membership query with bounding-box pruning,
  - invariants checker for box exactness and occupancy bounds,
  - debugging output as indented text and Graphviz DOT.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pimrtree'
func tracer() tracing.Trace {
	return tracing.Select("pimrtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
