package driver

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mutiter/index"
)

// Driver hands out pointers into a borrowed slice in the order chosen by an
// index.TrustedSource.
type Driver[V any] struct {
	values []V
	src    index.TrustedSource
	hook   func(i int)
	done   bool
}

// New binds values and src into a Driver.
// Returns ErrNilSource if src is nil and ErrOptionViolation for bad options.
// No uniqueness validation is possible here; see Options.Checks.
func New[V any](values []V, src index.TrustedSource, opts ...Option) (*Driver[V], error) {
	if src == nil {
		return nil, ErrNilSource
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.ExpectedLen >= 0 && o.ExpectedLen != len(values) {
		return nil, fmt.Errorf("%w: length %d, expected %d", ErrOptionViolation, len(values), o.ExpectedLen)
	}

	if o.Checks {
		src = index.Checked(src)
	}

	return &Driver[V]{values: values, src: src, hook: o.OnResolve}, nil
}

// MapValues is New for callers with a known-good source and options.
// It panics with the error New would have returned.
func MapValues[V any](values []V, src index.TrustedSource, opts ...Option) *Driver[V] {
	d, err := New(values, src, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Next returns a pointer to the element at the source's next position,
// or (nil, false) once the source is exhausted.
func (d *Driver[V]) Next() (*V, bool) {
	_, p, ok := d.NextIndexed()

	return p, ok
}

// NextIndexed is Next plus the resolved position. On exhaustion it returns
// (-1, nil, false).
func (d *Driver[V]) NextIndexed() (int, *V, bool) {
	if d.done {
		return -1, nil, false
	}

	i, ok := d.src.NextIndex(len(d.values))
	if !ok {
		d.done = true
		return -1, nil, false
	}
	// checked indexing: an out-of-range position panics here
	p := &d.values[i]
	if d.hook != nil {
		d.hook(i)
	}

	return i, p, true
}

// All returns an iter.Seq over the remaining pointers.
// Breaking out of the loop leaves the driver positioned after the last
// pointer yielded, so a later pull continues from there.
func (d *Driver[V]) All() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for {
			p, ok := d.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Indexed returns an iter.Seq2 of (position, pointer) pairs with the same
// resumption semantics as All.
func (d *Driver[V]) Indexed() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for {
			i, p, ok := d.NextIndexed()
			if !ok || !yield(i, p) {
				return
			}
		}
	}
}

// Len returns the length of the borrowed slice (0 after Release).
func (d *Driver[V]) Len() int {
	return len(d.values)
}

// Exhausted reports whether the driver has latched exhaustion.
func (d *Driver[V]) Exhausted() bool {
	return d.done
}

// Release drops the driver's references to the slice and source.
// Every later pull reports exhaustion. Pointers already returned stay valid.
func (d *Driver[V]) Release() {
	d.values = nil
	d.src = nil
	d.hook = nil
	d.done = true
}

// Each drives a full traversal of values in the order given by src, calling
// fn with every position and pointer until fn returns false or the source is
// exhausted. Returns the number of elements visited.
func Each[V any](values []V, src index.TrustedSource, fn func(i int, v *V) bool, opts ...Option) (int, error) {
	d, err := New(values, src, opts...)
	if err != nil {
		return 0, err
	}
	defer d.Release()

	visited := 0
	for i, p := range d.Indexed() {
		visited++
		if !fn(i, p) {
			break
		}
	}

	return visited, nil
}
