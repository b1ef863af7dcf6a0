package cart_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/gin-gonic/gin"
)

// CheckoutCart godoc
// @Summary Hand the cart off to WhatsApp
// @Description Builds the order summary message for the current cart and returns a wa.me deep link carrying it. The cart itself is left untouched.
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/checkout [post]
func CheckoutCart(c *gin.Context) {
	sessionID := cartSession(c)

	cart, err := cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("❌ Failed to load cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	message := services.BuildOrderMessage(cart)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout link ready", models.CheckoutResponse{
		Message:      message,
		WhatsAppLink: services.WhatsAppLink(message),
	}))
}
