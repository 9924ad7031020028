// Package batch runs per-item fetches in fixed-size concurrent batches with
// per-item failure isolation.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultSize caps concurrent outstanding fetches per batch.
const DefaultSize = 10

// Result carries one item's outcome. A failed item has Err set and a zero
// Value; it never aborts the batch or the overall operation.
type Result[R any] struct {
	Value R
	Err   error
}

// Fetch applies fn to every item, fanning out within a batch and joining
// before the next batch starts. The returned slice is index-aligned with
// items, so callers can zip results back regardless of resolution order.
func Fetch[T, R any](ctx context.Context, items []T, size int, fn func(context.Context, T) (R, error)) []Result[R] {
	if size <= 0 {
		size = DefaultSize
	}
	results := make([]Result[R], len(items))

	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))

		var g errgroup.Group
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				results[i].Value, results[i].Err = fn(ctx, items[i])
				return nil
			})
		}
		// errors stay in their Result slot
		_ = g.Wait()
	}
	return results
}
