package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paida-All/paidaall-store-backend/models"
)

// memoryCartStore is an in-memory CartStore for tests.
type memoryCartStore struct {
	values map[string]string
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{values: make(map[string]string)}
}

func (s *memoryCartStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryCartStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.values[key] = value
	return nil
}

func (s *memoryCartStore) Del(ctx context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func newTestCartService() *CartService {
	return NewCartService(newMemoryCartStore(), time.Hour)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	item := models.CartItem{ProductID: "1", Name: "Мука", Price: price(950), Quantity: 2}
	_, err := svc.AddItem(ctx, "sess", item)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Name: "Мука", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestAddItemSnapshotsAreKept(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Name: "Мука 2кг", Price: price(950), Quantity: 1})
	require.NoError(t, err)

	// The second add carries a different snapshot; the stored line keeps
	// the first one and only the quantity changes.
	cart, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Name: "Мука 2кг НОВАЯ", Price: price(999), Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, "Мука 2кг", cart.Items[0].Name)
	require.NotNil(t, cart.Items[0].Price)
	assert.Equal(t, 950.0, *cart.Items[0].Price)
}

func TestUpdateQuantitySetsAndRemoves(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess", models.CartItem{ProductID: "2", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "sess", "1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "sess", "1", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ProductID)
}

func TestRemoveItem(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "sess", "1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCart(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "sess"))

	cart, err := svc.GetCart(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestGetCartUnknownSessionIsEmpty(t *testing.T) {
	svc := newTestCartService()

	cart, err := svc.GetCart(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.SessionID)
	assert.Empty(t, cart.Items)
}

func TestSubtotalSkipsNilPrices(t *testing.T) {
	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "1", Price: price(100), Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "sess", models.CartItem{ProductID: "2", Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 200.0, cart.Subtotal())
	assert.Equal(t, 5, cart.TotalItems())
}

func price(v float64) *float64 { return &v }
