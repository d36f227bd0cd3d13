package index

// Shuffle yields a pseudo-random permutation of [0, n), where n is the
// length seen on the first call. The permutation is fixed by the seed.
//
// Unique because the order is a Fisher–Yates shuffle of 0..n-1.
type Shuffle struct {
	seed  int64
	order []int
	pos   int
	built bool
}

// NewShuffle returns a Shuffle. seed==0 selects a fixed default seed.
func NewShuffle(seed int64) *Shuffle {
	return &Shuffle{seed: seed}
}

// NextIndex implements TrustedSource.
// The first call allocates the permutation: O(n) time and memory.
func (s *Shuffle) NextIndex(n int) (int, bool) {
	if !s.built {
		s.built = true
		s.order = permRange(n, rngFromSeed(s.seed))
	}
	if s.pos >= len(s.order) {
		return 0, false
	}
	i := s.order[s.pos]
	s.pos++

	return i, true
}

// AssertsUniqueIndices implements TrustedSource.
func (*Shuffle) AssertsUniqueIndices() {}
