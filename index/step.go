package index

import "fmt"

// Step yields an arithmetic progression start, start+step, … stopping
// before stop. A negative step walks downwards and stops above stop.
//
// Unique because the sequence is strictly monotonic (step != 0).
type Step struct {
	cur  int
	stop int
	step int
}

// NewStep builds a Step. Returns ErrInvalidStep if step == 0, start < 0,
// or a descending step has stop < -1 (it would walk below position 0).
// For a descending walk to reach position 0 use stop == -1.
func NewStep(start, stop, step int) (*Step, error) {
	switch {
	case step == 0:
		return nil, fmt.Errorf("%w: step must be non-zero", ErrInvalidStep)
	case start < 0:
		return nil, fmt.Errorf("%w: start cannot be negative (%d)", ErrInvalidStep, start)
	case step < 0 && stop < -1:
		return nil, fmt.Errorf("%w: descending stop cannot be below -1 (%d)", ErrInvalidStep, stop)
	}

	return &Step{cur: start, stop: stop, step: step}, nil
}

// NextIndex implements TrustedSource.
func (s *Step) NextIndex(_ int) (int, bool) {
	if (s.step > 0 && s.cur >= s.stop) || (s.step < 0 && s.cur <= s.stop) {
		return 0, false
	}
	i := s.cur
	s.cur += s.step
	// pin the cursor on the stop side so an overshoot never re-enters
	if (s.step > 0 && s.cur > s.stop) || (s.step < 0 && s.cur < s.stop) {
		s.cur = s.stop
	}

	return i, true
}

// AssertsUniqueIndices implements TrustedSource.
func (*Step) AssertsUniqueIndices() {}

// Reverse yields n-1, n-2, …, 0 for the n seen on its first call.
//
// Unique because the sequence is strictly decreasing.
type Reverse struct {
	started bool
	cur     int
}

// NewReverse returns a Reverse source.
func NewReverse() *Reverse {
	return &Reverse{}
}

// NextIndex implements TrustedSource.
func (r *Reverse) NextIndex(n int) (int, bool) {
	if !r.started {
		r.started = true
		r.cur = n - 1
	}
	if r.cur < 0 {
		return 0, false
	}
	i := r.cur
	r.cur--

	return i, true
}

// AssertsUniqueIndices implements TrustedSource.
func (*Reverse) AssertsUniqueIndices() {}
