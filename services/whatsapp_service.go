package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Paida-All/paidaall-store-backend/config"
	"github.com/Paida-All/paidaall-store-backend/models"
)

// ═══════════════════════════════════════════════════════════
// WhatsApp Checkout Handoff
// ═══════════════════════════════════════════════════════════
// Checkout does not transact anything server-side: it formats a
// human-readable order summary and hands the customer off to WhatsApp
// with the message pre-filled.

// FormatPrice renders a price in the catalog's currency with thousands
// grouping; a nil price renders as the "price unavailable" label.
func FormatPrice(price *float64) string {
	if price == nil {
		return "Цена не указана"
	}
	return groupDigits(*price) + " " + config.Site.Delivery.Currency
}

// BuildOrderMessage renders the cart as the message body sent to the
// shop's WhatsApp number.
func BuildOrderMessage(cart *models.Cart) string {
	var b strings.Builder
	b.WriteString("Здравствуйте! Хочу оформить заказ:\n")

	for i, item := range cart.Items {
		fmt.Fprintf(&b, "%d. %s — %d шт.", i+1, item.Name, item.Quantity)
		if item.Price != nil {
			fmt.Fprintf(&b, " × %s", FormatPrice(item.Price))
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nИтого: %d товаров на %s", cart.TotalItems(), groupDigits(cart.Subtotal())+" "+config.Site.Delivery.Currency)
	return b.String()
}

// WhatsAppLink builds the outbound messaging URL with the message body
// percent-encoded as the text parameter.
func WhatsAppLink(message string) string {
	params := url.Values{}
	params.Set("text", message)
	return "https://wa.me/" + config.Site.Contacts.WhatsApp + "?" + params.Encode()
}

// groupDigits formats a whole-unit amount with space-separated thousands
// the way the storefront renders tenge prices.
func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
