package product_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/catalog"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products with optional search, category, type, and manufacturer filters
// @Tags store
// @Produce json
// @Param q query string false "Search query (name, category, manufacturer or description)"
// @Param category query []string false "Category names (repeatable ?category=A&category=B)"
// @Param type query []string false "Type names (repeatable)"
// @Param subcategory query []string false "Alias of type (repeatable)"
// @Param manufacturer query []string false "Manufacturer names (repeatable)"
// @Param sort query string false "Sort order" Enums(default, price_asc, price_desc) default(default)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" Enums(24, 48, 96, 192) default(48)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	state := parseFilterState(c)

	products, err := catalogService.FetchAllProducts(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	result := catalog.Apply(products, state)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		result.Products,
		&models.Pagination{
			Page:       result.Page,
			Limit:      result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	))
}
