package query

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStale is returned by Fetch when a newer fetch started on the same
// Tracker before this one finished. The result must not be applied.
var ErrStale = errors.New("stale response")

// Tracker hands out generations for one query slot (one list view) so that
// only the response to the latest request is applied.
type Tracker struct {
	latest atomic.Uint64
}

// Begin starts a new generation, superseding all earlier ones.
func (t *Tracker) Begin() uint64 {
	return t.latest.Add(1)
}

// IsLatest reports whether gen is still the newest generation.
func (t *Tracker) IsLatest(gen uint64) bool {
	return t.latest.Load() == gen
}

// Fetch runs fn as a new generation and returns its result only if no later
// Fetch began in the meantime. An error from fn is returned as-is.
func Fetch[T any](ctx context.Context, t *Tracker, fn func(context.Context) (T, error)) (T, error) {
	gen := t.Begin()
	res, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !t.IsLatest(gen) {
		var zero T
		return zero, ErrStale
	}
	return res, nil
}
