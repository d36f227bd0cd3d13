package index

import "errors"

// Sentinel errors for source construction and runtime checks.
var (
	// ErrInvalidRange is returned when a range has lo < 0 or hi < lo.
	ErrInvalidRange = errors.New("index: invalid range")

	// ErrInvalidStep is returned for a zero step or a negative start.
	ErrInvalidStep = errors.New("index: invalid step")

	// ErrInvalidLimit is returned for a negative limit.
	ErrInvalidLimit = errors.New("index: limit cannot be negative")

	// ErrNilSource is returned when a wrapper receives a nil source.
	ErrNilSource = errors.New("index: source is nil")

	// ErrNilPredicate is returned when NewFilter receives a nil predicate.
	ErrNilPredicate = errors.New("index: predicate is nil")

	// ErrDuplicateIndex reports a position produced more than once.
	ErrDuplicateIndex = errors.New("index: duplicate index")

	// ErrIndexOutOfRange reports a position outside [0, n).
	ErrIndexOutOfRange = errors.New("index: index out of range")

	// ErrLengthChanged reports a traversal whose length changed between calls.
	ErrLengthChanged = errors.New("index: buffer length changed during traversal")

	// ErrResurrected reports a source that produced a position after exhaustion.
	ErrResurrected = errors.New("index: source yielded after exhaustion")
)

// TrustedSource produces the positions a driver resolves into element
// pointers.
//
// Implementing TrustedSource is an assertion, not a type-checked property:
// for a freshly constructed instance, successive NextIndex(n) calls must
// return pairwise distinct positions in [0, n) until the first false, and
// false forever after. A source that repeats a position makes the driver
// hand out two pointers to the same element. Nothing detects that at run
// time unless the source is wrapped in Checked.
type TrustedSource interface {
	// NextIndex returns the next position for a slice of length n,
	// or false when the source is exhausted.
	NextIndex(n int) (int, bool)

	// AssertsUniqueIndices does nothing. Its presence marks the type as an
	// audited implementation of the non-repetition contract.
	AssertsUniqueIndices()
}
