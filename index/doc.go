// Package index defines TrustedSource, the contract for generators of
// unique positions into a slice, together with a set of stock sources.
//
// What
//
//   - TrustedSource: NextIndex(n) returns a position in [0, n) that the
//     instance has never returned before, or false once it is exhausted.
//   - AssertsUniqueIndices: a no-op marker method. Writing it is the
//     implementer's signature under the non-repetition invariant.
//   - Stock sources: Range (the canonical ascending counter), Step, Reverse,
//     Permutation, Filter, Limit and Shuffle.
//   - Checked: a wrapper that records every position it forwards and panics
//     on a repeat, an out-of-range value or a resurrected source.
//
// Why
//
//	A driver (see package driver) turns positions into *V pointers with a
//	plain &values[i]. It never remembers which positions it has already
//	handed out, so two pointers to the same element are only prevented by
//	the source. The compiler cannot see that; reviewers must. Every type
//	that implements AssertsUniqueIndices is trusted-boundary code and must
//	come with an argument for why it never repeats.
//
// Contract
//
//   - n is the length of the slice being traversed and never changes
//     during one traversal.
//   - Every position returned is distinct from all positions returned
//     earlier by the same instance.
//   - Every position returned is >= 0 and < n. A violation here is caught
//     by the Go bounds check at resolution and panics loudly.
//   - Once NextIndex returns false it returns false on every later call.
//   - Sources decide from their own state and n only. They never see
//     element values.
//
// A repeated in-range position is the dangerous breach: nothing panics,
// and two live pointers alias one element. Use Checked (or the driver's
// WithChecks option) while testing new sources.
//
// Concurrency
//
//	Sources are stateful and not safe for concurrent use.
//
// Errors
//
//   - ErrInvalidRange      NewRange with lo < 0 or hi < lo.
//   - ErrInvalidStep       NewStep with step == 0 or a negative start.
//   - ErrInvalidLimit      NewLimit with k < 0.
//   - ErrNilSource         a wrapper was given a nil source.
//   - ErrNilPredicate      NewFilter with a nil predicate.
//   - ErrDuplicateIndex    repeated position (Permutation, Checked).
//   - ErrIndexOutOfRange   negative or >= n position (Permutation, Checked).
//   - ErrLengthChanged     Checked saw n change mid-traversal.
//   - ErrResurrected       Checked saw a source yield after exhaustion.
package index
