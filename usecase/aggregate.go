package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut runs independent relation fetches concurrently and waits for all
// of them before the caller folds the results. The first error cancels the
// remaining fetches and is returned as-is. Both the profile view and the
// adventure feed are assembled through this helper.
func FanOut(ctx context.Context, fetches ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}
