package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Aggregate identifies the entity an event belongs to. Its ID is used as the
// message key, so every event of one aggregate lands on the same partition.
type Aggregate struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Event is the envelope for every message published to Kafka.
type Event struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Aggregate     Aggregate       `json:"aggregate"`
	Version       int             `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	Source        string          `json:"source"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// EventOption customizes an event built by NewEvent.
type EventOption func(*Event)

// WithCorrelationID tags the event with a request correlation ID. Empty IDs
// are ignored.
func WithCorrelationID(id string) EventOption {
	return func(e *Event) {
		if id != "" {
			e.CorrelationID = id
		}
	}
}

// WithVersion overrides the payload schema version, which defaults to 1.
func WithVersion(v int) EventOption {
	return func(e *Event) { e.Version = v }
}

// NewEvent builds an event with a fresh ID and the current UTC timestamp.
func NewEvent(eventType string, agg Aggregate, source string, data any, opts ...EventOption) (*Event, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	e := &Event{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Aggregate: agg,
		Version:   1,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Data:      payload,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Key returns the partition key.
func (e *Event) Key() []byte {
	return []byte(e.Aggregate.ID)
}

// DecodeData decodes the event payload into target.
func (e *Event) DecodeData(target any) error {
	return json.Unmarshal(e.Data, target)
}

// DecodeMessage restores the envelope carried in a Kafka message value.
func DecodeMessage(msg kafka.Message) (*Event, error) {
	var e Event
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return nil, fmt.Errorf("decode event from %s: %w", msg.Topic, err)
	}
	return &e, nil
}
