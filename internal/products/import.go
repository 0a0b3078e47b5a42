package products

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/finprod/internal/product"
)

// DefaultImportConcurrency bounds in-flight create calls during an import.
const DefaultImportConcurrency = 4

// ImportFailure records one product that could not be created.
type ImportFailure struct {
	ID  string
	Err error
}

// ImportResult summarizes an import.
type ImportResult struct {
	Created  []string
	Failures []ImportFailure
}

// Err joins every failure, or returns nil when all items were created.
func (r ImportResult) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.ID, f.Err))
	}
	return errors.Join(errs...)
}

// ImportAll creates every item with at most limit calls in flight.
// One failing item does not stop the others; a cancelled ctx does. The
// result always reports what was created, even when ctx was cancelled
// part-way. Created ids and failures are reported in input order.
func (s *Service) ImportAll(ctx context.Context, items []product.Product, limit int) (ImportResult, error) {
	if limit <= 0 {
		limit = DefaultImportConcurrency
	}

	errs := make([]error, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			_, errs[i] = s.Create(gctx, &items[i])
			return nil
		})
	}
	waitErr := g.Wait()

	var result ImportResult
	for i, err := range errs {
		if err != nil {
			result.Failures = append(result.Failures, ImportFailure{ID: items[i].ID, Err: err})
			continue
		}
		result.Created = append(result.Created, items[i].ID)
	}
	if waitErr != nil {
		return result, fmt.Errorf("importing products: %w", waitErr)
	}
	return result, nil
}
