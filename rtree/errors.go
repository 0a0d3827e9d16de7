package rtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")
	// ErrEmptyInput signals that there are no points to index.
	ErrEmptyInput = errors.New("rtree: no points to index")
	// ErrInvalidRange signals a build range with low > high or outside the point slice.
	ErrInvalidRange = errors.New("rtree: invalid point range")
	// ErrSubtreeNotFound signals an extraction target beyond the tree's node count.
	ErrSubtreeNotFound = errors.New("rtree: subtree not found")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("rtree: invalid tree")
)
