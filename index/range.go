package index

import "fmt"

// Range is the canonical TrustedSource: an ascending counter over [lo, hi).
//
// Unique because the sequence is strictly increasing.
type Range struct {
	next int
	hi   int
}

// NewRange returns a Range yielding lo, lo+1, …, hi-1.
// Returns ErrInvalidRange if lo < 0 or hi < lo.
func NewRange(lo, hi int) (*Range, error) {
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, lo, hi)
	}

	return &Range{next: lo, hi: hi}, nil
}

// UpTo returns a Range over [0, n). A negative n yields an empty range.
func UpTo(n int) *Range {
	if n < 0 {
		n = 0
	}

	return &Range{next: 0, hi: n}
}

// NextIndex implements TrustedSource. n is not consulted: a range bound past
// the slice length surfaces as a bounds panic in the driver.
func (r *Range) NextIndex(_ int) (int, bool) {
	if r.next >= r.hi {
		return 0, false
	}
	i := r.next
	r.next++

	return i, true
}

// Remaining reports how many positions are left.
func (r *Range) Remaining() int {
	return r.hi - r.next
}

// AssertsUniqueIndices implements TrustedSource.
func (*Range) AssertsUniqueIndices() {}
