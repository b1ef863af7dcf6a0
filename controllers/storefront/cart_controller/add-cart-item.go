package cart_controller

import (
	"log"
	"net/http"

	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Adds the product by ID with the given quantity. Re-adding an existing product increments its line quantity. Name, price and image are snapshotted at add time.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session ID"
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	sessionID := cartSession(c)

	product, err := catalogService.FetchProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		log.Printf("❌ Failed to resolve product %s: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
	}

	cart, err := cartService.AddItem(c.Request.Context(), sessionID, item)
	if err != nil {
		log.Printf("❌ Failed to add to cart %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", cartResponse(cart)))
}
