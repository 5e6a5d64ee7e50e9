package retro

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// how many items a worker handles between checks of the context
const cancelCheck = 256

// fanOut calls fn for every i in [0, n), split into contiguous chunks over at most workers
// goroutines. fn must only write to data owned by i.
func fanOut(ctx context.Context, workers, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelCheck == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
