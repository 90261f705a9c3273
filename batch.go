package main

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of compiling one source in CompileAll.
type BatchResult struct {
	Result *CompileResult
	Err    error
}

// CompileAll compiles independent sources concurrently, at most limit at a
// time (no limit if limit <= 0). Every job gets its own analyzer and
// generator through Compile, so temporaries are numbered from t1 in each
// result. A compile error is recorded in that source's BatchResult and does
// not stop the others; only cancellation of ctx aborts the batch.
func CompileAll(ctx context.Context, sources []string, limit int) ([]BatchResult, error) {
	results := make([]BatchResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compile(source)
			results[i] = BatchResult{Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
