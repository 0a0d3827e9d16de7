package unit

import "fmt"

// Range is a half-open range [Lo, Hi) of entry indices.
type Range struct {
	Lo, Hi int
}

// Len is the number of indices in r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Partition splits c entries into k contiguous ranges. The first c mod k
// ranges get one extra entry, so range sizes differ by at most one. Ranges may
// be empty if c < k.
func Partition(c, k int) ([]Range, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, k)
	}
	if c < 0 {
		return nil, fmt.Errorf("unit: negative entry count %d", c)
	}
	ranges := make([]Range, k)
	size, rem := c/k, c%k
	lo := 0
	for i := range ranges {
		n := size
		if i < rem {
			n++
		}
		ranges[i] = Range{Lo: lo, Hi: lo + n}
		lo += n
	}
	return ranges, nil
}
