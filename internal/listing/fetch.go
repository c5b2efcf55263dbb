// Package listing holds the list handling every admin screen shares: loading
// all pages of an endpoint, filtering, sorting, paginating, bulk selection and
// bulk actions.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MaxPages bounds a single FetchAll so a misbehaving endpoint cannot loop forever.
const MaxPages = 1000

// ErrTooManyPages is returned when FetchAll hits MaxPages.
var ErrTooManyPages = errors.New("too many pages")

// PageFunc loads one page of at most limit items starting at offset.
type PageFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// FetchAll calls fetch with offsets 0, batchSize, 2*batchSize... until a page
// shorter than batchSize comes back. Any failure discards everything loaded so far.
func FetchAll[T any](ctx context.Context, batchSize int, fetch PageFunc[T]) ([]T, error) {
	items, _, err := FetchAllCounted(ctx, batchSize, fetch)
	return items, err
}

// FetchAllCounted is FetchAll that also reports how many pages were requested.
func FetchAllCounted[T any](ctx context.Context, batchSize int, fetch PageFunc[T]) ([]T, int, error) {
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}

	all := make([]T, 0, batchSize)
	for page := 0; page < MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, page, err
		}

		batch, err := fetch(ctx, batchSize, page*batchSize)
		if err != nil {
			return nil, page + 1, fmt.Errorf("page %d: %w", page+1, err)
		}
		all = append(all, batch...)

		if len(batch) < batchSize {
			return all, page + 1, nil
		}
	}
	return nil, MaxPages, fmt.Errorf("%w: stopped after %d pages of %d", ErrTooManyPages, MaxPages, batchSize)
}
