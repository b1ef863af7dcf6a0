package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Paida-All/paidaall-store-backend/models"
)

const cartKeyPrefix = "store:cart:"

// CartStore is the persistence behind session carts.
type CartStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisCartStore keeps carts as JSON values with a sliding TTL.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisCartStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisCartStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// CartService owns the session cart operations. Lines are keyed by
// product identifier; adding an existing identifier increments its
// quantity instead of duplicating the line.
type CartService struct {
	store CartStore
	ttl   time.Duration
}

func NewCartService(store CartStore, ttl time.Duration) *CartService {
	return &CartService{store: store, ttl: ttl}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	raw, found, err := s.store.Get(ctx, cartKeyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	cart := &models.Cart{SessionID: sessionID}
	if !found {
		return cart, nil
	}
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		// A corrupt cart is recoverable: start over.
		return &models.Cart{SessionID: sessionID}, nil
	}
	cart.SessionID = sessionID
	return cart, nil
}

// AddItem adds a snapshotted line. The name, price and image on the item
// are taken at add time and never re-synced.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return cart, s.save(ctx, cart)
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if quantity < 1 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			} else {
				cart.Items[i].Quantity = quantity
			}
			return cart, s.save(ctx, cart)
		}
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.Del(ctx, cartKeyPrefix+sessionID)
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKeyPrefix+cart.SessionID, string(raw), s.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
