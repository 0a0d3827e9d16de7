package unit

import (
	"fmt"
	"slices"
	"sync"

	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
)

// Search answers whether q is stored in t, using the given number of workers.
//
// The root record's entries (children of an inner root, points of a leaf root)
// are partitioned among the workers. Each worker searches its range and
// records a hit in its private slot. Search returns after all workers have
// joined. Its answer equals t.Contains(0, q) for every worker count.
func Search(t *flat.Tree, q geom.Point, workers int) (bool, error) {
	if workers < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	if t.Len() == 0 {
		return false, fmt.Errorf("%w: no records", flat.ErrInvalidTree)
	}
	root := t.At(0)
	if !root.Box.Contains(q) {
		return false, nil
	}
	ranges, err := Partition(root.Count(), workers)
	if err != nil {
		return false, err
	}
	hits := make([]bool, workers)
	var wg sync.WaitGroup
	for w, r := range ranges {
		if r.Len() == 0 {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			hits[w] = searchRange(t, root, r, q)
		}()
	}
	wg.Wait()
	return slices.Contains(hits, true), nil
}

func searchRange(t *flat.Tree, root *flat.Node, r Range, q geom.Point) bool {
	if root.Leaf {
		for _, p := range root.Points[r.Lo:r.Hi] {
			if p.Equal(q) {
				return true
			}
		}
		return false
	}
	for _, c := range root.Children[r.Lo:r.Hi] {
		if t.Contains(c, q) {
			return true
		}
	}
	return false
}
