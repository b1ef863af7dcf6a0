package filter_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/catalog"
	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/gin-gonic/gin"
)

var catalogService *services.CatalogService

// Init wires the shared catalog service into this package's handlers.
func Init(svc *services.CatalogService) {
	catalogService = svc
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns manufacturer, category and type facets with product counts, narrowed by the active selections
// @Tags store
// @Produce json
// @Param category query []string false "Active category selections (repeatable)"
// @Param type query []string false "Active type selections (repeatable)"
// @Param manufacturer query []string false "Active manufacturer selections (repeatable)"
// @Success 200 {object} models.ApiResponse{data=models.FacetMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	products, err := catalogService.FetchAllProducts(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to load catalog for facets: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	state := catalog.NewFilterState()
	state.Categories = c.QueryArray("category")
	state.Types = c.QueryArray("type")
	state.Manufacturers = c.QueryArray("manufacturer")

	mode := catalog.ParseSelectionMode(config.App.FacetMode)
	metadata := catalog.Aggregate(products, state, mode)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
