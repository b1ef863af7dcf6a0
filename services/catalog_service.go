package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	catalog_cache "github.com/Paida-All/paidaall-store-backend/cache"
	"github.com/Paida-All/paidaall-store-backend/catalog"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/Paida-All/paidaall-store-backend/sources"
)

const (
	fetchMaxRetries   = 3
	fetchRetryBackoff = 500 * time.Millisecond
)

// CatalogService assembles the full product set from a remote source and
// answers slug lookups. It is the only component that talks to the source;
// everything downstream works on the immutable snapshot it produces.
type CatalogService struct {
	source     sources.ProductSource
	windowSize int
}

func NewCatalogService(source sources.ProductSource) *CatalogService {
	return &CatalogService{
		source:     source,
		windowSize: sources.DefaultWindowSize,
	}
}

// FetchAllProducts returns the ordered non-archived product set, serving
// from the snapshot cache when fresh. Cache misses trigger a single
// shared refetch.
//
// The result excludes every archived record, carries a slug on every
// product (synthesized from name and identifier when the table has none)
// and is ordered by sort order ascending with missing order last, stable
// on ties.
func (s *CatalogService) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := catalog_cache.Get(); ok {
		return cached, nil
	}
	return catalog_cache.Refresh(func() ([]models.Product, error) {
		return s.fetchAll(ctx)
	})
}

// fetchAll pages through the source in fixed-size windows until a window
// comes back short. Any window failing after its retries aborts the whole
// fetch; there is no partial-result recovery.
func (s *CatalogService) fetchAll(ctx context.Context) ([]models.Product, error) {
	var all []models.Product
	offset := 0

	for {
		window, err := s.fetchWindow(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch products at offset %d: %w", offset, err)
		}

		all = append(all, window...)
		if len(window) < s.windowSize {
			break
		}
		offset += s.windowSize
	}

	active := make([]models.Product, 0, len(all))
	for i := range all {
		if all[i].Archived {
			continue
		}
		p := all[i]
		if p.Slug == "" {
			p.Slug = catalog.DeriveSlug(p.Name, p.ID)
		}
		active = append(active, p)
	}

	sortBySortOrder(active)
	return active, nil
}

func (s *CatalogService) fetchWindow(ctx context.Context, offset int) ([]models.Product, error) {
	var lastErr error
	for attempt := 0; attempt < fetchMaxRetries; attempt++ {
		if attempt > 0 {
			backoff := fetchRetryBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		window, err := s.source.ListWindow(ctx, offset, s.windowSize)
		if err == nil {
			return window, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// FetchProductBySlug resolves a product by its URL slug. The persisted
// slug column is tried first; when that misses, the synthesized slugs of
// the non-archived set are scanned, first match wins. A nil product with
// a nil error is a valid not-found outcome, not a failure.
func (s *CatalogService) FetchProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.source.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p != nil {
		if p.Archived {
			return nil, nil
		}
		if p.Slug == "" {
			p.Slug = catalog.DeriveSlug(p.Name, p.ID)
		}
		return p, nil
	}

	// Fallback for products whose slug only exists as a derivation.
	all, err := s.FetchAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slug == slug {
			found := all[i]
			return &found, nil
		}
	}
	return nil, nil
}

// FetchProductByID resolves a product from the snapshot by identifier,
// returning (nil, nil) when absent.
func (s *CatalogService) FetchProductByID(ctx context.Context, id string) (*models.Product, error) {
	all, err := s.FetchAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			found := all[i]
			return &found, nil
		}
	}
	return nil, nil
}

// sortBySortOrder orders ascending with nil last; ties keep the source's
// order (implementation-defined, but stable across repeated fetches).
func sortBySortOrder(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].SortOrder, products[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
