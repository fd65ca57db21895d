package nats

import (
	"context"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type eventPublisher interface {
	PublishEvent(ctx context.Context, subject string, event PropertyEvent) error
}

// EventListener publishes catalog change notifications to NATS so other
// services can react to them. Publish failures are logged, not propagated;
// the catalog mutation already applied.
type EventListener struct {
	publisher eventPublisher
	logger    *logger.Logger
}

func NewEventListener(publisher eventPublisher, log *logger.Logger) *EventListener {
	return &EventListener{publisher: publisher, logger: log}
}

func (l *EventListener) OnPropertyCreated(property *domain.Property) {
	l.publish(SubjectPropertyCreated, PropertyEvent{
		PropertyID: property.ID,
		Address:    property.Address,
		Price:      property.Price,
	})
}

func (l *EventListener) OnPropertyRemoved(property *domain.Property) {
	l.publish(SubjectPropertyRemoved, PropertyEvent{
		PropertyID: property.ID,
		Address:    property.Address,
		Price:      property.Price,
	})
}

func (l *EventListener) OnPriceChanged(property *domain.Property, oldPrice, newPrice float64) {
	l.publish(SubjectPropertyPriceChanged, PropertyEvent{
		PropertyID: property.ID,
		Address:    property.Address,
		Price:      newPrice,
		OldPrice:   oldPrice,
	})
}

func (l *EventListener) publish(subject string, event PropertyEvent) {
	if err := l.publisher.PublishEvent(context.Background(), subject, event); err != nil {
		l.logger.Error("EventListener.publish: failed to publish event",
			"subject", subject, "property_id", event.PropertyID, "error", err.Error())
	}
}
