package unit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
)

// Pool is a set of resident execution units. Each unit decodes its tree once;
// every query point is broadcast to all units and the pool collects exactly
// one result word per unit.
//
// Queries are serialized. A pool must be closed to release its units.
type Pool struct {
	ctx     context.Context
	cast    *caster.Caster // broadcasts query points to units
	replies chan reply
	ids     []uint64
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex // guards seq and closed
	seq     uint64
	closed  bool
}

type broadcast struct {
	seq   uint64
	query []byte
}

type reply struct {
	seq   uint64
	index int
	res   Result
	err   error
}

// NewPool loads one resident unit per job. Job.Query is ignored. Units stay
// alive until the pool is closed or ctx is done.
func NewPool(ctx context.Context, jobs []Job) (*Pool, error) {
	if len(jobs) == 0 {
		return nil, errors.New("unit: pool needs at least one job")
	}
	units := make([]*resident, len(jobs))
	ids := make([]uint64, len(jobs))
	for i, job := range jobs {
		u, err := load(job.ID, bytes.Clone(job.Tree), job.Workers)
		if err != nil {
			return nil, err
		}
		units[i], ids[i] = u, job.ID
	}
	p := &Pool{
		ctx:     ctx,
		cast:    caster.New(ctx),
		replies: make(chan reply, len(jobs)),
		ids:     ids,
		done:    make(chan struct{}),
	}
	for i, u := range units {
		ch, ok := p.cast.Sub(ctx, 1)
		if !ok {
			p.Close()
			return nil, fmt.Errorf("%w: cannot attach unit %d", ErrPoolClosed, u.id)
		}
		p.wg.Add(1)
		go p.serve(i, u, ch)
	}
	tracer().Infof("pool started with %d units", len(units))
	return p, nil
}

// Units returns the unit identifiers in job order.
func (p *Pool) Units() []uint64 {
	return p.ids
}

func (p *Pool) serve(index int, u *resident, queries <-chan interface{}) {
	defer p.wg.Done()
	for msg := range queries {
		b := msg.(broadcast)
		res, err := u.answer(bytes.Clone(b.query))
		select {
		case p.replies <- reply{seq: b.seq, index: index, res: res, err: err}:
		case <-p.done:
			return
		}
	}
}

// Query broadcasts q to every unit and returns their result words in job
// order. It fails with ErrMissingResult if ctx ends before every unit has
// answered.
func (p *Pool) Query(ctx context.Context, q geom.Point) ([]Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.ctx.Err() != nil {
		return nil, ErrPoolClosed
	}
	p.seq++
	seq := p.seq
	p.cast.Pub(broadcast{seq: seq, query: flat.EncodePoint(q)})
	results := make([]Result, len(p.ids))
	answered := make([]bool, len(p.ids))
	for n := 0; n < len(p.ids); {
		select {
		case r := <-p.replies:
			if r.seq != seq || answered[r.index] {
				continue // left over from an abandoned query
			}
			if r.err != nil {
				return nil, r.err
			}
			answered[r.index] = true
			results[r.index] = r.res
			n++
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %d of %d units answered: %w", ErrMissingResult, n, len(p.ids), ctx.Err())
		case <-p.ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrPoolClosed, p.ctx.Err())
		}
	}
	return results, nil
}

// Close stops all units and waits for them to exit. Closing twice is a no-op.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()
	close(p.done)
	p.cast.Close()
	p.wg.Wait()
	tracer().Debugf("pool with %d units closed", len(p.ids))
}
