package cart_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	catalog_cache "github.com/Paida-All/paidaall-store-backend/cache"
	"github.com/Paida-All/paidaall-store-backend/models"
	"github.com/Paida-All/paidaall-store-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCartStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{data: make(map[string]string)}
}

func (m *memoryCartStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCartStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryCartStore) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type fakeSource struct {
	products []models.Product
}

func (f *fakeSource) ListWindow(ctx context.Context, offset, limit int) ([]models.Product, error) {
	if offset >= len(f.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[offset:end], nil
}

func (f *fakeSource) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return nil, nil
}

func price(v float64) *float64 { return &v }

func setupCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	catalog_cache.Invalidate()
	t.Cleanup(catalog_cache.Invalidate)

	source := &fakeSource{products: []models.Product{
		{ID: "a1", Name: "Чай Assam", Price: price(1450), Image: "tea.jpg", Slug: "chaj-assam-a1"},
		{ID: "b2", Name: "Мука", Price: price(980), Slug: "muka-b2"},
	}}

	Init(
		services.NewCartService(newMemoryCartStore(), time.Hour),
		services.NewCatalogService(source),
	)

	router := gin.New()
	cart := router.Group("/api/v1/store/cart")
	cart.GET("", GetCart)
	cart.DELETE("", ClearCart)
	cart.POST("/items", AddCartItem)
	cart.PUT("/items/:productId", UpdateCartItem)
	cart.DELETE("/items/:productId", RemoveCartItem)
	cart.POST("/checkout", CheckoutCart)
	return router
}

func doCart(router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set("X-Cart-Session", session)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeCartResponse(t *testing.T, w *httptest.ResponseRecorder) models.CartResponse {
	t.Helper()
	var resp struct {
		Data models.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestGetCartMintsSession(t *testing.T) {
	router := setupCartRouter(t)

	w := doCart(router, http.MethodGet, "/api/v1/store/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, w.Header().Get("X-Cart-Session"))

	data := decodeCartResponse(t, w)
	assert.Empty(t, data.Cart.Items)
	assert.Zero(t, data.TotalItems)
}

func TestAddCartItemSnapshotsProduct(t *testing.T) {
	router := setupCartRouter(t)

	w := doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1",
		`{"product_id":"a1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeCartResponse(t, w)
	require.Len(t, data.Cart.Items, 1)
	item := data.Cart.Items[0]
	assert.Equal(t, "Чай Assam", item.Name)
	assert.Equal(t, "tea.jpg", item.Image)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 2900.0, data.Subtotal)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	router := setupCartRouter(t)

	w := doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1",
		`{"product_id":"zzz"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItemIncrementsExistingLine(t *testing.T) {
	router := setupCartRouter(t)

	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1","quantity":1}`)
	w := doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1","quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeCartResponse(t, w)
	require.Len(t, data.Cart.Items, 1)
	assert.Equal(t, 4, data.Cart.Items[0].Quantity)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	router := setupCartRouter(t)

	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1","quantity":2}`)
	w := doCart(router, http.MethodPut, "/api/v1/store/cart/items/a1", "s1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeCartResponse(t, w)
	assert.Empty(t, data.Cart.Items)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := setupCartRouter(t)

	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1"}`)
	w := doCart(router, http.MethodGet, "/api/v1/store/cart", "s2", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeCartResponse(t, w)
	assert.Empty(t, data.Cart.Items)
}

func TestClearCart(t *testing.T) {
	router := setupCartRouter(t)

	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1"}`)
	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"b2"}`)

	w := doCart(router, http.MethodDelete, "/api/v1/store/cart", "s1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doCart(router, http.MethodGet, "/api/v1/store/cart", "s1", "")
	data := decodeCartResponse(t, w)
	assert.Empty(t, data.Cart.Items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := setupCartRouter(t)

	w := doCart(router, http.MethodPost, "/api/v1/store/cart/checkout", "s1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutBuildsWhatsAppLink(t *testing.T) {
	router := setupCartRouter(t)

	doCart(router, http.MethodPost, "/api/v1/store/cart/items", "s1", `{"product_id":"a1","quantity":2}`)

	w := doCart(router, http.MethodPost, "/api/v1/store/cart/checkout", "s1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.CheckoutResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Message, "Чай Assam")
	assert.Contains(t, resp.Data.Message, "2 шт.")
	assert.True(t, strings.HasPrefix(resp.Data.WhatsAppLink, "https://wa.me/"))

	// Checkout leaves the cart untouched.
	w = doCart(router, http.MethodGet, "/api/v1/store/cart", "s1", "")
	data := decodeCartResponse(t, w)
	require.Len(t, data.Cart.Items, 1)
}
