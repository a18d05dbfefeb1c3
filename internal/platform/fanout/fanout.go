// Package fanout runs a function over a slice of items with a bounded number
// of goroutines and returns one result per item, in input order.
//
// Per-item failures are recorded in the matching Result rather than aborting
// the batch, so a single failing readiness check never hides the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item. Err is set when fn failed or the item
// was never started because ctx was done.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item, at most limit at a time, and blocks until all
// calls have returned. A limit below 1 is treated as 1.
//
// Items still queued when ctx is done are skipped and get ctx.Err(). Calls
// already running are left to observe ctx themselves.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		// Go blocks while the group is full; stop queueing once ctx is done.
		if err := ctx.Err(); err != nil {
			for j := i; j < len(items); j++ {
				results[j].Err = err
			}
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	// Errors live in results; the group itself never fails.
	_ = g.Wait()
	return results
}
