// Package driver turns a borrowed slice and an index.TrustedSource into a
// lazy sequence of element pointers.
//
// What
//
//   - MapValues / New bind a []V and a source into a *Driver[V].
//   - Next pulls one *V; NextIndexed also reports its position.
//   - All and Indexed expose the same pulls as iter.Seq / iter.Seq2 for
//     range-over-func loops.
//   - Each runs a whole traversal with a callback.
//
// Guarantee
//
//	Every pointer returned by one Driver addresses a different element,
//	provided the source honours the index.TrustedSource contract. The
//	consumer may hold several of them at once and write through any of
//	them. Writes land directly in the caller's slice.
//
// Exhaustion
//
//	The first time the source reports exhaustion the driver latches it:
//	every later pull returns (nil, false) and the source is not asked again.
//
// Failure modes
//
//   - Position >= len(values) or < 0: the Go bounds check panics.
//   - Repeated position: NOT detected by default. Two returned pointers
//     alias one element. Enable WithChecks (or build with the
//     mutiter_debug tag) to panic with index.ErrDuplicateIndex instead.
//
// Ownership
//
//	The driver borrows values for its lifetime and never appends to,
//	reallocates or copies it. The caller must not resize or otherwise touch
//	the slice while the driver is in use. Dropping a driver is always safe;
//	Release drops its references early.
//
// Concurrency
//
//	A Driver is not safe for concurrent use. Pointers it has returned may be
//	handed to different goroutines, since they never overlap.
//
// Usage
//
//	values := []int{1, 2, 3}
//	d := driver.MapValues(values, index.UpTo(len(values)))
//	for p := range d.All() {
//	    *p *= 10
//	}
//	// values == [10 20 30]
package driver
