package product_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductBySlug godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by URL slug
// @Tags store
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := catalogService.FetchProductBySlug(c.Request.Context(), slug)
	if err != nil {
		log.Printf("❌ Failed to resolve product %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
