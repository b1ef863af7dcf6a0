package product_controller

import (
	"strconv"

	"github.com/Paida-All/paidaall-store-backend/catalog"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/gin-gonic/gin"
)

var catalogService *services.CatalogService

// Init wires the shared catalog service into this package's handlers.
func Init(svc *services.CatalogService) {
	catalogService = svc
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterState builds the browsing state from query params. The
// legacy "subcategory" param is merged into the type dimension because
// both filter the same underlying field.
func parseFilterState(c *gin.Context) catalog.FilterState {
	state := catalog.NewFilterState()

	state.Categories = c.QueryArray("category")
	state.Manufacturers = c.QueryArray("manufacturer")
	state.Types = append(c.QueryArray("type"), c.QueryArray("subcategory")...)

	if q := c.Query("q"); q != "" {
		state.SearchQuery = q
	} else {
		state.SearchQuery = c.Query("search")
	}

	switch c.Query("sort") {
	case "price_asc":
		state.Sort = catalog.SortPriceAsc
	case "price_desc":
		state.Sort = catalog.SortPriceDesc
	default:
		state.Sort = catalog.SortDefault
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		state.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		state.PageSize = catalog.NormalizePageSize(limit)
	}

	return state
}
