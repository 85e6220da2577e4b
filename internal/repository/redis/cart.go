package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CartStateRepository implements repository.CartStateRepository using a
// single Redis string key holding the JSON-encoded state.
type CartStateRepository struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCartStateRepository creates a Redis-backed cart state repository. A zero
// ttl stores the record without expiry.
func NewCartStateRepository(client *redis.Client, key string, ttl time.Duration) *CartStateRepository {
	return &CartStateRepository{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Load reads and decodes the cart state record.
func (r *CartStateRepository) Load(ctx context.Context) (*domain.CartState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("cart state", r.key)
		}
		return nil, fmt.Errorf("redis get cart state: %w", err)
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.CorruptState(r.key, err)
	}

	return &state, nil
}

// Save encodes and writes the cart state record, refreshing its TTL.
func (r *CartStateRepository) Save(ctx context.Context, state *domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart state: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart state: %w", err)
	}

	return nil
}
