package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// DefaultCartKey is the storage key the cart state lives under.
const DefaultCartKey = "storefront:cart"

// CartStateRepository persists the single cart state record.
type CartStateRepository interface {
	// Load returns the stored state. It returns an error wrapping
	// apperrors.ErrNotFound when no record exists and one wrapping
	// apperrors.ErrCorruptState when the record cannot be decoded.
	Load(ctx context.Context) (*domain.CartState, error)

	// Save overwrites the stored record with state.
	Save(ctx context.Context, state *domain.CartState) error
}
