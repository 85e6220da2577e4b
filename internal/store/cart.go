package store

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/tracing"
)

var tracer = tracing.Tracer("github.com/utafrali/storefront/internal/store")

// CartEventPublisher emits cart change notifications.
type CartEventPublisher interface {
	PublishCartUpdated(ctx context.Context, action domain.CartActionType, state domain.CartState) error
	PublishCartCleared(ctx context.Context) error
}

// CartStore owns the cart state. Every action is applied through
// domain.ReduceCart and the resulting state is written to the repository.
// Actions are serialized; readers always see a complete state.
type CartStore struct {
	mu     sync.RWMutex
	state  domain.CartState
	repo   repository.CartStateRepository
	events CartEventPublisher
	logger *slog.Logger
}

// NewCartStore creates a cart store seeded from repo. A missing, undecodable
// or invalid record yields the empty cart. events may be nil.
func NewCartStore(ctx context.Context, repo repository.CartStateRepository, events CartEventPublisher, logger *slog.Logger) *CartStore {
	s := &CartStore{
		repo:   repo,
		events: events,
		logger: logger,
	}
	s.state = s.load(ctx)
	return s
}

func (s *CartStore) load(ctx context.Context) domain.CartState {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			cartLoadFallbacksTotal.WithLabelValues(fallbackNotFound).Inc()
			s.logger.DebugContext(ctx, "no stored cart state, starting empty")
		case errors.Is(err, apperrors.ErrCorruptState):
			cartLoadFallbacksTotal.WithLabelValues(fallbackCorrupt).Inc()
			s.logger.WarnContext(ctx, "stored cart state is not decodable, starting empty",
				slog.String("error", err.Error()),
			)
		default:
			cartLoadFallbacksTotal.WithLabelValues(fallbackUnavailable).Inc()
			s.logger.WarnContext(ctx, "failed to load cart state, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return domain.EmptyCart()
	}

	if err := stored.Validate(); err != nil {
		cartLoadFallbacksTotal.WithLabelValues(fallbackInvalid).Inc()
		s.logger.WarnContext(ctx, "stored cart state is invalid, starting empty",
			slog.String("error", err.Error()),
		)
		return domain.EmptyCart()
	}

	state := stored.Clone()
	state.Recalculate()

	s.logger.InfoContext(ctx, "cart state restored",
		slog.Int("line_items", len(state.Items)),
		slog.Int("total_items", state.TotalItems),
	)
	return state
}

// Snapshot returns a copy of the current state.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// AddToCart increments p's quantity, adding a line for it if absent.
func (s *CartStore) AddToCart(ctx context.Context, p domain.Product) domain.CartState {
	return s.Dispatch(ctx, domain.AddItem(p))
}

// RemoveFromCart decrements p's quantity, dropping the line at zero.
func (s *CartStore) RemoveFromCart(ctx context.Context, p domain.Product) domain.CartState {
	return s.Dispatch(ctx, domain.RemoveItem(p))
}

// DeleteFromCart drops p's line regardless of quantity.
func (s *CartStore) DeleteFromCart(ctx context.Context, p domain.Product) domain.CartState {
	return s.Dispatch(ctx, domain.DeleteItem(p))
}

// ClearCart empties the cart.
func (s *CartStore) ClearCart(ctx context.Context) domain.CartState {
	return s.Dispatch(ctx, domain.ClearCart())
}

// ToggleCartVisibility flips the cart open flag.
func (s *CartStore) ToggleCartVisibility(ctx context.Context) domain.CartState {
	return s.Dispatch(ctx, domain.ToggleCart())
}

// Dispatch applies action, persists the result and returns a copy of the new
// state. A failed write is logged and does not revert the in-memory state.
func (s *CartStore) Dispatch(ctx context.Context, action domain.CartAction) domain.CartState {
	ctx, span := tracer.Start(ctx, "cart."+string(action.Type))
	defer span.End()

	s.mu.Lock()
	next, changed := domain.ReduceCart(s.state, action)
	s.state = next
	snapshot := next.Clone()
	s.persist(ctx, &snapshot)
	s.mu.Unlock()

	span.SetAttributes(
		attribute.Bool("cart.changed", changed),
		attribute.Int("cart.total_items", snapshot.TotalItems),
	)
	cartActionsTotal.WithLabelValues(string(action.Type), strconv.FormatBool(changed)).Inc()

	if changed {
		s.publish(ctx, action.Type, snapshot)
	}

	s.logger.DebugContext(ctx, "cart action applied",
		slog.String("action", string(action.Type)),
		slog.Bool("changed", changed),
		slog.Int("total_items", snapshot.TotalItems),
		slog.Int64("total_price", snapshot.TotalPrice),
	)

	return snapshot
}

// persist must be called with s.mu held so writes land in action order.
func (s *CartStore) persist(ctx context.Context, state *domain.CartState) {
	// The write outlives a cancelled request.
	if err := s.repo.Save(context.WithoutCancel(ctx), state); err != nil {
		cartPersistFailuresTotal.Inc()
		s.logger.ErrorContext(ctx, "failed to persist cart state",
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartStore) publish(ctx context.Context, action domain.CartActionType, state domain.CartState) {
	if s.events == nil {
		return
	}

	var err error
	if action == domain.ActionClearCart {
		err = s.events.PublishCartCleared(ctx)
	} else {
		err = s.events.PublishCartUpdated(ctx, action, state)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart event",
			slog.String("action", string(action)),
			slog.String("error", err.Error()),
		)
	}
}
