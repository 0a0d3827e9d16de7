/*
Package flat lays out an owned rtree as a single contiguous, pointer-free
array of fixed-layout node records.

Flattening assigns every node its pre-order position: position 0 is the root of
the flattened subtree, and a child's position is always greater than its
parent's. Child links are array positions into the same arena, never memory
addresses, so a flattened tree can be encoded into one byte blob, shipped into
a different address space and queried there without any reconstruction.

Every record has a fixed capacity of entry slots (points for a leaf, child
positions for an inner node). The capacity is configured explicitly and is
checked for every node: a node that does not fit makes flattening fail with
ErrCapacityExceeded, nothing is ever truncated.

Blob layout (all integers and floats big endian):

	header   | magic "PRT1" | version | reserved | capacity | node count | reserved |
	bytes    | 0          3 |    4    |     5    |   6   7  |  8     11  | 12    15 |

	record   | tag | reserved | count | minx | miny | maxx | maxy | slots ...            |
	bytes    |  0  |  1     3 | 4   7 | 8    | 16   | 24   | 32   | 40 .. 40+16*capacity |

A leaf slot holds a point as two float64; an inner node's slot area holds the
child positions as uint32, packed from the start of the area.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package flat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pimrtree'
func tracer() tracing.Trace {
	return tracing.Select("pimrtree")
}
