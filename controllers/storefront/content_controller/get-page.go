package content_controller

import (
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPage godoc
// @Summary Get a static informational page
// @Description Returns the content of one informational page (delivery, payment, about, contacts) by slug
// @Tags content
// @Produce json
// @Param slug path string true "Page slug" Enums(delivery, payment, about, contacts)
// @Success 200 {object} models.ApiResponse{data=models.PageContent}
// @Failure 404 {object} models.ApiResponse
// @Router /store/pages/{slug} [get]
func GetPage(c *gin.Context) {
	slug := c.Param("slug")

	page, ok := config.Pages[slug]
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page fetched successfully", page))
}
