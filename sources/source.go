// Package sources provides access to the hosted products table. The catalog
// service treats a source as an opaque record store queried through
// offset-windowed bulk reads and exact-match slug lookups.
package sources

import (
	"context"
	"errors"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// ErrSourceUnavailable wraps transport-level failures. Lookup misses are
// not errors: GetBySlug returns (nil, nil) for a valid empty result.
var ErrSourceUnavailable = errors.New("product source unavailable")

// DefaultWindowSize matches the hosted table's server-side row ceiling.
const DefaultWindowSize = 1000

// ProductSource is a remote product table.
type ProductSource interface {
	// ListWindow returns one window of rows ordered by sort order
	// (missing order last). A window shorter than limit signals
	// exhaustion to the caller.
	ListWindow(ctx context.Context, offset, limit int) ([]models.Product, error)

	// GetBySlug looks up a row by its persisted slug field.
	// Returns (nil, nil) when no row matches.
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
}
