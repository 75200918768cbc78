package aggregation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps concurrent sub-fetches at the store's connection
// pool size, so a fan-out never starves other requests of connections.
const DefaultConcurrency = 5

// ForEach runs fn for every index in [0, n) concurrently with wait-for-all
// semantics: it returns only after all calls finish, and the first error
// cancels the remaining ones (fail-fast, no partial results).
//
// Callers write results into the slot for their index, so the primary
// collection's order survives regardless of completion order.
func ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(ctx, i)
		})
	}

	return g.Wait()
}
