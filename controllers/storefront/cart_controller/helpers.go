package cart_controller

import (
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionHeader carries the anonymous cart identity. The client keeps the
// value it receives back and replays it on every cart call.
const sessionHeader = "X-Cart-Session"

var (
	cartService    *services.CartService
	catalogService *services.CatalogService
)

// Init wires the shared services into this package's handlers.
func Init(cart *services.CartService, catalog *services.CatalogService) {
	cartService = cart
	catalogService = catalog
}

// cartSession returns the caller's session ID, minting a fresh one when
// the header is absent. The ID is always echoed back on the response so
// first-time callers learn their session.
func cartSession(c *gin.Context) string {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header(sessionHeader, sessionID)
	return sessionID
}

func cartResponse(cart *models.Cart) models.CartResponse {
	return models.CartResponse{
		Cart:       cart,
		TotalItems: cart.TotalItems(),
		Subtotal:   cart.Subtotal(),
	}
}
