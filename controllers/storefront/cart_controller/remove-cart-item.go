package cart_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Removes the product's line from the cart. Removing an absent product is a no-op.
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	sessionID := cartSession(c)
	productID := c.Param("productId")

	cart, err := cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		log.Printf("❌ Failed to update cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from cart", cartResponse(cart)))
}

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every line from the session's cart.
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	sessionID := cartSession(c)

	if err := cartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		log.Printf("❌ Failed to clear cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	empty := &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartResponse(empty)))
}
