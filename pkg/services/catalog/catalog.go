package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/services/progress"
)

// forEachRegion fans fn out over regions with at most limit calls in flight.
// Per-region failures are fn's concern (log and skip); only context
// cancellation stops the sweep.
func forEachRegion(ctx context.Context, regions []domain.Region, limit int, fn func(ctx context.Context, step progress.Step[domain.Region]) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, step := range progress.Enumerate(regions) {
		g.Go(func() error {
			return fn(ctx, step)
		})
	}

	return g.Wait()
}
