package cart_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the current cart
// @Description Returns the cart for the session in the X-Cart-Session header. An unknown session yields an empty cart.
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	sessionID := cartSession(c)

	cart, err := cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("❌ Failed to load cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartResponse(cart)))
}
