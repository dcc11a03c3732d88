// ABOUTME: Bounded-concurrency map utility for fan-out over slices
// ABOUTME: Caps simultaneous goroutines to avoid overwhelming upstream services

package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every index of a slice of length n, running at most
// limit invocations concurrently. fn receives the element index; results
// are written by the caller's closure, so ordering and membership of the
// underlying slice never change.
//
// A limit <= 0 means unbounded. Map returns the first error from fn and
// cancels the remaining work through ctx.
func Map(ctx context.Context, n int, limit int, fn func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(ctx, i)
		})
	}

	return g.Wait()
}
