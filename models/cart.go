package models

// ═══════════════════════════════════════════════════════════
// Cart Models
// ═══════════════════════════════════════════════════════════

// CartItem is one cart line. Name, price and image are snapshots taken
// when the line was added and are not re-synced if the product changes.
type CartItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Image     string   `json:"img"`
	Quantity  int      `json:"quantity"`
}

// Cart is a per-session list of line items keyed by product identifier.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// Subtotal sums line prices, treating lines without a price as 0.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for i := range c.Items {
		if c.Items[i].Price != nil {
			sum += *c.Items[i].Price * float64(c.Items[i].Quantity)
		}
	}
	return sum
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// Quantity deliberately has no "required" tag: zero is a valid value
// (it removes the line) and binding would reject it as missing.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type CartResponse struct {
	Cart       *Cart   `json:"cart"`
	TotalItems int     `json:"total_items"`
	Subtotal   float64 `json:"subtotal"`
}

type CheckoutResponse struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}
