// Package index - RNG utilities for randomized traversal orders.
//
// Goals:
//   - Determinism: same seed ⇒ identical orders across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// math/rand.Rand is NOT goroutine-safe; every Shuffle owns its own stream.
package index

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from rng.
// n <= 0 yields an empty permutation.
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}
