// Package paginate fetches every item of an offset-paginated list endpoint.
//
// The total is read once before paging starts. If the source changes between
// the count call and the page calls, items may be missed or returned twice;
// All does not detect this and callers receive a best-effort snapshot.
package paginate

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// CountFunc returns the number of items matching the query.
type CountFunc func(ctx context.Context) (int, error)

// FetchFunc returns the page of items starting at offset, at most limit long.
type FetchFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// ErrInvalidPageSize is returned when All is called with a non-positive page size.
var ErrInvalidPageSize = errors.New("page size must be positive")

// All calls count once, then fetch at offsets 0, pageSize, 2*pageSize, ... below the total,
// appending each page in the order returned. It performs ceil(total/pageSize) fetches.
func All[T any](ctx context.Context, pageSize int, count CountFunc, fetch FetchFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	total, err := count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	items := make([]T, 0, total)
	for offset := 0; offset < total; offset += pageSize {
		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
		}
		log.Debug("Fetched page", "offset", offset, "count", len(page), "total", total)
		items = append(items, page...)
	}
	return items, nil
}
