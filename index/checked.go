package index

import "fmt"

// checked enforces the TrustedSource contract of an inner source at run
// time. It is itself trusted only because it panics before forwarding
// anything that would break the contract.
type checked struct {
	src       TrustedSource
	n         int
	seen      []uint64
	started   bool
	exhausted bool
}

// Checked wraps src with a seen-positions record. Every forwarded position
// is verified against the contract and a breach panics with an error
// wrapping ErrDuplicateIndex, ErrIndexOutOfRange, ErrLengthChanged or
// ErrResurrected.
//
// Cost: one bit per slice element plus a branch per call. Intended for
// tests and debug builds (see the driver's WithChecks option).
//
// Panics with ErrNilSource if src is nil.
func Checked(src TrustedSource) TrustedSource {
	if src == nil {
		panic(ErrNilSource)
	}
	if c, ok := src.(*checked); ok {
		return c
	}

	return &checked{src: src}
}

func (c *checked) NextIndex(n int) (int, bool) {
	if !c.started {
		c.started = true
		c.n = n
		if n > 0 {
			c.seen = make([]uint64, (n+63)/64)
		}
	} else if n != c.n {
		panic(fmt.Errorf("%w: was %d, now %d", ErrLengthChanged, c.n, n))
	}

	i, ok := c.src.NextIndex(n)
	if !ok {
		c.exhausted = true
		return 0, false
	}
	if c.exhausted {
		panic(fmt.Errorf("%w: %T returned %d", ErrResurrected, c.src, i))
	}
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: %T returned %d for length %d", ErrIndexOutOfRange, c.src, i, n))
	}

	word, bit := i/64, uint64(1)<<(uint(i)%64)
	if c.seen[word]&bit != 0 {
		panic(fmt.Errorf("%w: %T returned %d twice", ErrDuplicateIndex, c.src, i))
	}
	c.seen[word] |= bit

	return i, true
}

func (*checked) AssertsUniqueIndices() {}
