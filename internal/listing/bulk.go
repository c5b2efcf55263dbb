package listing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBulkConcurrency is used when BulkApply gets a non-positive limit.
const DefaultBulkConcurrency = 4

// BulkResult reports the outcome of a bulk action per key.
type BulkResult[K comparable] struct {
	Succeeded []K         `json:"succeeded"`
	Failed    map[K]error `json:"-"`
}

// OK reports whether every key succeeded.
func (r BulkResult[K]) OK() bool {
	return len(r.Failed) == 0
}

// Err joins the per-key failures, or returns nil.
func (r BulkResult[K]) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for k, err := range r.Failed {
		errs = append(errs, fmt.Errorf("%v: %w", k, err))
	}
	return errors.Join(errs...)
}

// BulkApply runs fn for every key with at most concurrency calls in flight.
// A failing key never stops the others. Keys not started before ctx is
// cancelled are reported as failed with the context error.
func BulkApply[K comparable](ctx context.Context, keys []K, concurrency int, fn func(context.Context, K) error) BulkResult[K] {
	if concurrency <= 0 {
		concurrency = DefaultBulkConcurrency
	}

	errs := make([]error, len(keys))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, k := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = fn(ctx, k)
			return nil
		})
	}
	_ = g.Wait()

	res := BulkResult[K]{
		Succeeded: make([]K, 0, len(keys)),
		Failed:    make(map[K]error),
	}
	for i, k := range keys {
		if errs[i] != nil {
			res.Failed[k] = errs[i]
			continue
		}
		res.Succeeded = append(res.Succeeded, k)
	}
	return res
}
