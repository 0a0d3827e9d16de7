package pimrtree

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/unit"
)

// Answer is the outcome of a distributed query.
type Answer struct {
	Found bool
	Units []uint64  // units which reported the point
	Run   uuid.UUID // identifies the query in traces
}

type unitReply struct {
	index int
	res   unit.Result
	err   error
}

// Query ships every non-idle assignment together with q to an execution unit
// via exec, waits for all result words and ORs them. Units run concurrently.
// If Config.UnitTimeout is set, units not answering in time make the query
// fail with ErrUnitFailed.
func (ix *Index) Query(ctx context.Context, q geom.Point, exec unit.Executor) (Answer, error) {
	answer := Answer{Run: uuid.New()}
	assignments, err := ix.Assign()
	if err != nil {
		return answer, err
	}
	ctx, cancel := ix.withTimeout(ctx)
	defer cancel()
	query := flat.EncodePoint(q)
	replies := make(chan unitReply, len(assignments))
	dispatched := 0
	for i, a := range assignments {
		if a.Idle() {
			continue
		}
		dispatched++
		job := unit.Job{ID: a.Unit, Tree: a.Blob, Query: query, Workers: ix.cfg.Workers}
		go func() {
			res, err := exec.Execute(ctx, job)
			replies <- unitReply{index: i, res: res, err: err}
		}()
	}
	T().Debugf("run %s: query %v dispatched to %d units", answer.Run, q, dispatched)
	results := make([]unit.Result, len(assignments))
	for n := 0; n < dispatched; n++ {
		select {
		case r := <-replies:
			if r.err != nil {
				T().Errorf("run %s: unit %d failed: %v", answer.Run, assignments[r.index].Unit, r.err)
				return answer, fmt.Errorf("%w: unit %d: %w", ErrUnitFailed, assignments[r.index].Unit, r.err)
			}
			results[r.index] = r.res
		case <-ctx.Done():
			T().Errorf("run %s: %d of %d units answered", answer.Run, n, dispatched)
			return answer, fmt.Errorf("%w: %w: %d of %d units answered: %w",
				ErrUnitFailed, unit.ErrMissingResult, n, dispatched, ctx.Err())
		}
	}
	for i, res := range results {
		if res == unit.Found {
			answer.Found = true
			answer.Units = append(answer.Units, assignments[i].Unit)
		}
	}
	return answer, nil
}

// Pool starts a resident execution unit for every non-idle assignment.
// The pool lives until it is closed or ctx is done.
func (ix *Index) Pool(ctx context.Context) (*unit.Pool, error) {
	assignments, err := ix.Assign()
	if err != nil {
		return nil, err
	}
	jobs := make([]unit.Job, 0, len(assignments))
	for _, a := range assignments {
		if !a.Idle() {
			jobs = append(jobs, unit.Job{ID: a.Unit, Tree: a.Blob, Workers: ix.cfg.Workers})
		}
	}
	return unit.NewPool(ctx, jobs)
}

// QueryPool broadcasts q to the resident units of pool and ORs their result
// words. Config.UnitTimeout applies as for Query.
func (ix *Index) QueryPool(ctx context.Context, pool *unit.Pool, q geom.Point) (Answer, error) {
	answer := Answer{Run: uuid.New()}
	ctx, cancel := ix.withTimeout(ctx)
	defer cancel()
	results, err := pool.Query(ctx, q)
	if err != nil {
		T().Errorf("run %s: %v", answer.Run, err)
		return answer, fmt.Errorf("%w: %w", ErrUnitFailed, err)
	}
	for i, id := range pool.Units() {
		if results[i] == unit.Found {
			answer.Found = true
			answer.Units = append(answer.Units, id)
		}
	}
	return answer, nil
}

func (ix *Index) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ix.cfg.UnitTimeout > 0 {
		return context.WithTimeout(ctx, ix.cfg.UnitTimeout)
	}
	return context.WithCancel(ctx)
}
