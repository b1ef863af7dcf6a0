package catalog

import (
	"sort"
	"strings"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// Result is one visible page of filtered products plus the counters the
// grid needs to render pagination.
type Result struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Apply runs the active filter selections, free-text search, sort order
// and page slicing over an immutable product snapshot. It is pure and
// re-entrant: the input slice is never mutated.
//
// The engine owns page clamping: a page beyond the last valid page yields
// the last page rather than an error, and a page size outside the allowed
// set falls back to the default, so the contract is total.
func Apply(products []models.Product, state FilterState) Result {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], &state) {
			filtered = append(filtered, products[i])
		}
	}

	sortProducts(filtered, state.Sort)

	pageSize := NormalizePageSize(state.PageSize)
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	page := state.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// matches is the per-product filter predicate: logical AND across every
// active dimension, with sentinel substitution for absent fields.
func matches(p *models.Product, state *FilterState) bool {
	if len(state.Categories) > 0 && !contains(state.Categories, FacetCategory(p)) {
		return false
	}
	if len(state.Types) > 0 {
		if p.Subcategory == "" || !contains(state.Types, p.Subcategory) {
			return false
		}
	}
	if len(state.Manufacturers) > 0 && !contains(state.Manufacturers, FacetManufacturer(p)) {
		return false
	}
	if state.SearchQuery != "" && !searchMatches(p, state.SearchQuery) {
		return false
	}
	return true
}

// searchMatches is a case-insensitive substring match against name,
// category, description and producer; any single hit qualifies.
func searchMatches(p *models.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Producer), q)
}

// sortProducts reorders in place. The default order preserves the
// repository's sortOrder-then-stable ordering. Price sorts treat an absent
// price as 0 and break ties by the incoming position, so repeated runs
// over identical input produce identical output.
func sortProducts(products []models.Product, option SortOption) {
	switch option {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceValue() < products[j].PriceValue()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceValue() > products[j].PriceValue()
		})
	}
}
