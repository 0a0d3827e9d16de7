package flat

import "errors"

var (
	// ErrInvalidConfig signals an invalid flattening configuration.
	ErrInvalidConfig = errors.New("flat: invalid configuration")
	// ErrCapacityExceeded signals a node with more entries than a record can hold.
	ErrCapacityExceeded = errors.New("flat: node occupancy exceeds record capacity")
	// ErrNodeBudget signals that a flattened tree would not fit into the
	// node budget of an execution unit.
	ErrNodeBudget = errors.New("flat: node budget exhausted")
	// ErrInvalidTree signals a flattened array violating the layout invariants.
	ErrInvalidTree = errors.New("flat: invalid flattened tree")
	// ErrBadBlob signals a byte blob that does not decode to a flattened tree.
	ErrBadBlob = errors.New("flat: malformed blob")
)
