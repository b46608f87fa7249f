package limitset

import "errors"

// Sentinel errors returned by the traversal.
var (
	// ErrBadCount indicates that the requested number of points is below one.
	ErrBadCount = errors.New("limitset: point count must be at least 1")

	// ErrInvalidPriority indicates that a frontier entry produced a NaN
	// priority, which would corrupt the heap order. It points at degenerate
	// generator matrices or seed circles.
	ErrInvalidPriority = errors.New("limitset: frontier priority is NaN")

	// ErrEmptyFrontier indicates that Advance was called on a frontier
	// already drained by Points.
	ErrEmptyFrontier = errors.New("limitset: frontier is empty")
)

// Options customizes a traversal. Functions taking *Options treat nil as
// DefaultOptions().
type Options struct {
	// OnAdvance is called once per successor pushed by Advance, with the
	// Quad index of the letter the popped word ended in and the index of
	// the letter the child word appends. Useful for tracing and testing;
	// the traversal itself never depends on it.
	OnAdvance func(last, next int)
}

// DefaultOptions returns an Options with a no-op OnAdvance hook.
func DefaultOptions() Options {
	return Options{
		OnAdvance: func(int, int) {},
	}
}
