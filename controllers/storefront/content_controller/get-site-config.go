package content_controller

import (
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetSiteConfig godoc
// @Summary Get site configuration
// @Description Returns company, contact and delivery information for the storefront shell
// @Tags content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=config.SiteConfig}
// @Router /store/site [get]
func GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Site configuration fetched", config.Site))
}
