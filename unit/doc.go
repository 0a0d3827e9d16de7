/*
Package unit runs queries on execution units.

An execution unit owns a private copy of one flattened subtree and answers
point-membership queries for it with a fixed number of workers. The root's
direct entries are split into contiguous, fair ranges, one per worker; every
worker writes only its own result slot, and the unit reports the OR of all
slots after every worker has finished.

Units never share memory with the host: a Job carries the encoded tree and the
encoded query point, and the unit answers with a result word. Executor abstracts
over how a job reaches a unit. LocalExecutor runs a job on a fresh unit per
call; a Pool keeps units resident and broadcasts queries to all of them.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package unit

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pimrtree'
func tracer() tracing.Trace {
	return tracing.Select("pimrtree")
}

var (
	// ErrInvalidWorkers signals a worker count below one.
	ErrInvalidWorkers = errors.New("unit: invalid worker count")
	// ErrPoolClosed signals a query on a pool that has been closed.
	ErrPoolClosed = errors.New("unit: pool closed")
	// ErrMissingResult signals that not every unit delivered its result word.
	ErrMissingResult = errors.New("unit: missing result")
)
