package unit

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/pimrtree/flat"
)

// Result is the result word a unit reports for one query.
type Result uint64

const (
	NotFound Result = 0
	Found    Result = 1
)

// ResultBytes is the size of an encoded result word.
const ResultBytes = 8

func (r Result) String() string {
	if r == Found {
		return "found"
	}
	return "not found"
}

// Encode returns the result word's wire form.
func (r Result) Encode() []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(r))
}

// DecodeResult reads a result word. Any non-zero word counts as found.
func DecodeResult(b []byte) (Result, error) {
	if len(b) != ResultBytes {
		return NotFound, fmt.Errorf("%w: result word needs %d bytes, got %d", flat.ErrBadBlob, ResultBytes, len(b))
	}
	if binary.BigEndian.Uint64(b) != 0 {
		return Found, nil
	}
	return NotFound, nil
}

// Job is the work shipped to one execution unit.
type Job struct {
	ID      uint64 // unit identifier
	Tree    []byte // encoded flat tree
	Query   []byte // encoded query point
	Workers int
}

// Executor runs a job on some execution unit and returns its result word.
type Executor interface {
	Execute(ctx context.Context, job Job) (Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, job Job) (Result, error)

// Execute calls f(ctx, job).
func (f ExecutorFunc) Execute(ctx context.Context, job Job) (Result, error) {
	return f(ctx, job)
}

// LocalExecutor runs every job on a fresh in-process unit. The unit receives
// copies of the job's blobs, so it never shares memory with the caller.
type LocalExecutor struct{}

// Execute decodes the job's tree and query point and runs Search.
func (LocalExecutor) Execute(ctx context.Context, job Job) (Result, error) {
	if err := ctx.Err(); err != nil {
		return NotFound, err
	}
	u, err := load(job.ID, bytes.Clone(job.Tree), job.Workers)
	if err != nil {
		return NotFound, err
	}
	return u.answer(bytes.Clone(job.Query))
}

// resident is a unit with its decoded tree.
type resident struct {
	id      uint64
	tree    *flat.Tree
	workers int
}

func load(id uint64, blob []byte, workers int) (*resident, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: unit %d got %d", ErrInvalidWorkers, id, workers)
	}
	t, err := flat.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("unit %d: %w", id, err)
	}
	tracer().Debugf("unit %d loaded %d records", id, t.Len())
	return &resident{id: id, tree: t, workers: workers}, nil
}

func (u *resident) answer(query []byte) (Result, error) {
	q, err := flat.DecodePoint(query)
	if err != nil {
		return NotFound, fmt.Errorf("unit %d: %w", u.id, err)
	}
	found, err := Search(u.tree, q, u.workers)
	if err != nil {
		return NotFound, fmt.Errorf("unit %d: %w", u.id, err)
	}
	if found {
		tracer().Debugf("unit %d found %v", u.id, q)
		return Found, nil
	}
	return NotFound, nil
}
