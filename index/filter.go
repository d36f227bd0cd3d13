package index

import "fmt"

// Filter forwards only the positions of an inner source for which keep
// returns true. keep sees positions, never element values.
//
// Unique because a subsequence of a unique sequence is unique.
type Filter struct {
	src  TrustedSource
	keep func(i int) bool
	done bool
}

// NewFilter wraps src. Returns ErrNilSource or ErrNilPredicate on nil input.
func NewFilter(src TrustedSource, keep func(i int) bool) (*Filter, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if keep == nil {
		return nil, ErrNilPredicate
	}

	return &Filter{src: src, keep: keep}, nil
}

// NextIndex implements TrustedSource.
func (f *Filter) NextIndex(n int) (int, bool) {
	if f.done {
		return 0, false
	}
	for {
		i, ok := f.src.NextIndex(n)
		if !ok {
			f.done = true
			return 0, false
		}
		if f.keep(i) {
			return i, true
		}
	}
}

// AssertsUniqueIndices implements TrustedSource.
func (*Filter) AssertsUniqueIndices() {}

// Limit forwards at most k positions of an inner source.
//
// Unique because a prefix of a unique sequence is unique.
type Limit struct {
	src  TrustedSource
	left int
}

// NewLimit wraps src. Returns ErrNilSource or ErrInvalidLimit (k < 0).
func NewLimit(src TrustedSource, k int) (*Limit, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, k)
	}

	return &Limit{src: src, left: k}, nil
}

// NextIndex implements TrustedSource.
func (l *Limit) NextIndex(n int) (int, bool) {
	if l.left <= 0 {
		return 0, false
	}
	i, ok := l.src.NextIndex(n)
	if !ok {
		l.left = 0
		return 0, false
	}
	l.left--

	return i, true
}

// AssertsUniqueIndices implements TrustedSource.
func (*Limit) AssertsUniqueIndices() {}
