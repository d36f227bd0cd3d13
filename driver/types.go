package driver

import (
	"errors"
	"fmt"
)

// Sentinel errors for driver construction.
var (
	// ErrNilSource is returned when a driver is built without a source.
	ErrNilSource = errors.New("driver: source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("driver: invalid option supplied")
)

// Option configures a Driver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the driver settings.
type Options struct {
	// Checks wraps the source in index.Checked.
	// Defaults to true only in builds tagged mutiter_debug.
	Checks bool

	// OnResolve, if non-nil, is called with each position after it has
	// resolved, just before its pointer is returned. Out-of-range positions
	// panic before reaching it.
	OnResolve func(i int)

	// ExpectedLen, if >= 0, must equal len(values). -1 disables the check.
	ExpectedLen int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Checks = debugChecks (false unless built with -tags mutiter_debug)
//   - no OnResolve hook
//   - no length expectation (ExpectedLen == -1)
func DefaultOptions() Options {
	return Options{
		Checks:      debugChecks,
		OnResolve:   nil,
		ExpectedLen: -1,
		err:         nil,
	}
}

// WithChecks enables the run-time uniqueness check (see index.Checked).
func WithChecks() Option {
	return func(o *Options) {
		o.Checks = true
	}
}

// WithoutChecks disables the run-time uniqueness check, even in debug builds.
func WithoutChecks() Option {
	return func(o *Options) {
		o.Checks = false
	}
}

// WithOnResolve registers a hook observing each resolved position.
func WithOnResolve(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}

// WithExpectedLen asserts the length of the slice at construction.
//
//	n >= 0: New fails with ErrOptionViolation unless len(values) == n
//	n < 0:  invalid option → ErrOptionViolation
func WithExpectedLen(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: expected length cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpectedLen = n
	}
}
