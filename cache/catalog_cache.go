package catalog_cache

import (
	"sync"
	"time"

	"github.com/Paida-All/paidaall-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Product snapshot cache ───────────────────────────────────────────────────
// Holds the full non-archived product list assembled by the catalog service.
// Every filter/facet computation runs against this immutable snapshot.

type snapshot struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	mu      sync.RWMutex
	current *snapshot

	// refreshMu serializes refreshes so rapid re-requests share one
	// in-flight fetch instead of stampeding the remote source.
	refreshMu sync.Mutex
)

func Get() ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if current != nil && time.Since(current.fetchedAt) < TTL {
		return current.products, true
	}
	return nil, false
}

func Set(products []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	current = &snapshot{products: products, fetchedAt: time.Now()}
}

// Refresh returns the cached snapshot when a concurrent caller already
// refreshed it, otherwise runs fetch once and stores the result. A fetch
// error leaves the cache untouched.
func Refresh(fetch func() ([]models.Product, error)) ([]models.Product, error) {
	refreshMu.Lock()
	defer refreshMu.Unlock()

	if products, ok := Get(); ok {
		return products, nil
	}

	products, err := fetch()
	if err != nil {
		return nil, err
	}
	Set(products)
	return products, nil
}

// ── Invalidate (call when the underlying table is known to have changed) ─────

func Invalidate() {
	mu.Lock()
	current = nil
	mu.Unlock()
}
