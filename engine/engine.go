package engine

import "time"

// Engine carries the scratch state spec.md §5 requires to be shared
// across calls rather than reallocated per call: a reusable saturator-
// count buffer, plus an optional cooperative deadline.
type Engine struct {
	counts   []int
	deadline time.Time
	inUse    bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDeadline sets an absolute deadline; CheckDeadline returns ErrTimeout
// once time.Now() passes it.
func WithDeadline(t time.Time) Option {
	return func(e *Engine) { e.deadline = t }
}

// WithTimeout sets a deadline d from the moment New is called.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.deadline = time.Now().Add(d) }
}

// New returns an Engine ready for use.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Acquire marks e as held by the current call, failing if it is already
// held by another. A caller pairs it with a deferred Release, making the
// "exclusively owned during any library call" contract of spec.md §5
// observable rather than assumed. No Polyhedron or Grid method takes an
// *Engine.
func (e *Engine) Acquire() error {
	if e.inUse {
		return ErrInUse
	}
	e.inUse = true
	return nil
}

// Release returns e to the unheld state.
func (e *Engine) Release() { e.inUse = false }

// CheckDeadline reports ErrTimeout if a deadline was set and has elapsed.
// Long-running conversions consult this periodically (spec.md §5); on
// ErrTimeout the caller must leave its receiver in its pre-call state.
func (e *Engine) CheckDeadline() error {
	if e.deadline.IsZero() {
		return nil
	}
	if time.Now().After(e.deadline) {
		return ErrTimeout
	}
	return nil
}

// SaturatorCounts returns e's reusable scratch buffer resized to length n
// and zeroed, reallocating only when it must grow. Used by the redundancy
// quick-test in minimize (spec.md §4.4.2): a row of D with fewer
// saturators than space_dim - rank(eqs) - 1 is redundant.
func (e *Engine) SaturatorCounts(n int) []int {
	if cap(e.counts) < n {
		e.counts = make([]int, n)
	} else {
		e.counts = e.counts[:n]
		for i := range e.counts {
			e.counts[i] = 0
		}
	}
	return e.counts
}

// Close releases e's scratch buffer. Mirrors spec.md §5's finalize().
func (e *Engine) Close() {
	e.counts = nil
}
