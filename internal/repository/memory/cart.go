package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// CartStateRepository keeps the encoded cart state in process memory. It
// stores the same JSON bytes the Redis implementation does, so decode
// failures behave identically.
type CartStateRepository struct {
	mu   sync.RWMutex
	key  string
	data []byte
}

// NewCartStateRepository creates an empty in-memory repository.
func NewCartStateRepository(key string) *CartStateRepository {
	return &CartStateRepository{key: key}
}

// Load decodes the stored record.
func (r *CartStateRepository) Load(_ context.Context) (*domain.CartState, error) {
	r.mu.RLock()
	data := r.data
	r.mu.RUnlock()

	if data == nil {
		return nil, apperrors.NotFound("cart state", r.key)
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.CorruptState(r.key, err)
	}
	return &state, nil
}

// Save encodes and stores state.
func (r *CartStateRepository) Save(_ context.Context, state *domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart state: %w", err)
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

// Raw returns a copy of the stored bytes and whether a record exists.
func (r *CartStateRepository) Raw() ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, false
	}
	return append([]byte(nil), r.data...), true
}

// SetRaw replaces the stored bytes verbatim.
func (r *CartStateRepository) SetRaw(data []byte) {
	r.mu.Lock()
	r.data = append([]byte(nil), data...)
	r.mu.Unlock()
}
