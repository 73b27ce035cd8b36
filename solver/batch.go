package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent problems concurrently with the same options.
//
// Solutions are returned in the order of problems. The first invalid problem or
// configuration cancels the remaining solves and its error is returned.
func SolveAll(ctx context.Context, problems []*Problem, opts ...SolveOption) ([]*Solution, error) {
	solutions := make([]*Solution, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range problems {
		i, p := i, p
		g.Go(func() error {
			sol, err := SolveContext(gctx, p, opts...)
			if err != nil {
				return err
			}
			solutions[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return solutions, nil
}
