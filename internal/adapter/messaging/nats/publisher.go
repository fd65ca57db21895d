package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects carrying catalog change events.
const (
	SubjectPropertyCreated      = "property.created"
	SubjectPropertyRemoved      = "property.removed"
	SubjectPropertyPriceChanged = "property.price_changed"
)

// PropertyEvent is the wire payload published for every catalog change.
type PropertyEvent struct {
	PropertyID string    `json:"property_id"`
	Address    string    `json:"address"`
	Price      float64   `json:"price"`
	OldPrice   float64   `json:"old_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher sends property events to a NATS server as JSON messages.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

// PublishEvent marshals the event and publishes it on the given subject.
// OccurredAt is stamped with the current time when left zero.
func (p *Publisher) PublishEvent(ctx context.Context, subject string, event PropertyEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
