package index

import "fmt"

// Permutation yields a fixed, caller-chosen order of positions. The order
// does not need to cover every position: [4, 1] is a valid Permutation.
//
// Unique because NewPermutation rejects repeated entries.
type Permutation struct {
	order []int
	pos   int
}

// NewPermutation validates order and returns a source yielding it verbatim.
// The slice is copied, so later edits by the caller have no effect.
//
// Returns ErrIndexOutOfRange for a negative entry and ErrDuplicateIndex for
// a repeated one. Entries >= the traversed length are not detectable here
// and panic in the driver.
//
// Complexity: O(len(order)) time and memory.
func NewPermutation(order []int) (*Permutation, error) {
	seen := make(map[int]struct{}, len(order))
	for k, i := range order {
		if i < 0 {
			return nil, fmt.Errorf("%w: order[%d] = %d", ErrIndexOutOfRange, k, i)
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("%w: order[%d] = %d", ErrDuplicateIndex, k, i)
		}
		seen[i] = struct{}{}
	}

	return &Permutation{order: append([]int(nil), order...)}, nil
}

// NextIndex implements TrustedSource.
func (p *Permutation) NextIndex(_ int) (int, bool) {
	if p.pos >= len(p.order) {
		return 0, false
	}
	i := p.order[p.pos]
	p.pos++

	return i, true
}

// Len returns the number of positions in the order.
func (p *Permutation) Len() int {
	return len(p.order)
}

// AssertsUniqueIndices implements TrustedSource.
func (*Permutation) AssertsUniqueIndices() {}
