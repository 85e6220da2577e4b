package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// Kafka topics for cart events.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
)

// Event types carried in the envelope.
const (
	TypeCartUpdated = "cart.updated"
	TypeCartCleared = "cart.cleared"
)

const (
	AggregateTypeCart = "cart"
	SourceStorefront  = "storefront"
)

// CartUpdatedData is the payload of a cart.updated event.
type CartUpdatedData struct {
	Action     string         `json:"action"`
	Items      []CartItemData `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
	IsCartOpen bool           `json:"is_cart_open"`
}

// CartItemData is one line of a cart event.
type CartItemData struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartClearedData is the payload of a cart.cleared event.
type CartClearedData struct {
	CartKey string `json:"cart_key"`
}

// Publisher is the subset of *pkgkafka.Producer used here.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Producer publishes cart events to Kafka.
type Producer struct {
	publisher Publisher
	cartKey   string
	logger    *slog.Logger
}

// NewProducer creates a cart event producer. cartKey becomes the aggregate ID
// so every event for one cart lands on the same partition.
func NewProducer(publisher Publisher, cartKey string, logger *slog.Logger) *Producer {
	return &Producer{
		publisher: publisher,
		cartKey:   cartKey,
		logger:    logger,
	}
}

// PublishCartUpdated publishes a cart.updated event describing state after
// action was applied.
func (p *Producer) PublishCartUpdated(ctx context.Context, action domain.CartActionType, state domain.CartState) error {
	items := make([]CartItemData, len(state.Items))
	for i, li := range state.Items {
		items[i] = CartItemData{
			ProductID: li.ID,
			Title:     li.Title,
			Price:     li.Price,
			Quantity:  li.Quantity,
		}
	}

	data := CartUpdatedData{
		Action:     string(action),
		Items:      items,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice,
		IsCartOpen: state.IsCartOpen,
	}

	return p.publish(ctx, TopicCartUpdated, TypeCartUpdated, data)
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context) error {
	return p.publish(ctx, TopicCartCleared, TypeCartCleared, CartClearedData{CartKey: p.cartKey})
}

func (p *Producer) publish(ctx context.Context, topic, eventType string, data any) error {
	evt, err := pkgkafka.NewEvent(eventType,
		pkgkafka.Aggregate{ID: p.cartKey, Type: AggregateTypeCart},
		SourceStorefront, data,
		pkgkafka.WithCorrelationID(logger.CorrelationIDFromContext(ctx)),
	)
	if err != nil {
		return fmt.Errorf("create %s event: %w", eventType, err)
	}

	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "cart event published",
		slog.String("event_type", eventType),
		slog.String("event_id", evt.EventID),
	)
	return nil
}
