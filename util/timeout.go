package util

import (
	"context"
	"time"
)

// WithTimeout races fn against a fixed deadline. A deadline hit
// surfaces as ErrTimeout so callers can treat it as a recoverable
// stage fault rather than a request-fatal one.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	out, err := fn(ctx)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		var zero T
		return zero, ErrTimeout
	}
	return out, err
}
