package cart_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Set the quantity of a cart line
// @Description Sets the quantity of the product's cart line. A quantity below 1 removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/items/{productId} [put]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sessionID := cartSession(c)
	productID := c.Param("productId")

	cart, err := cartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		log.Printf("❌ Failed to update cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartResponse(cart)))
}
