package usecase

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/filter"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/observer"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/strategy"
)

// PropertyUsecase is the catalog façade. It owns the repository and the
// change notifier and is the only writer of both. A single mutex covers
// every "mutate then notify" sequence, so observers always see
// notifications consistent with the state they describe.
//
// Invalid inputs on mutations (nil property, out-of-range price on add) are
// absorbed as silent no-ops: nothing is stored and nothing is notified.
type PropertyUsecase struct {
	mu       sync.Mutex
	repo     domain.PropertyRepository
	notifier *observer.PropertyChangeNotifier
	logger   *logger.Logger
	tracer   trace.Tracer
}

func NewPropertyUsecase(repo domain.PropertyRepository, log *logger.Logger) *PropertyUsecase {
	return &PropertyUsecase{
		repo:     repo,
		notifier: observer.NewPropertyChangeNotifier(),
		logger:   log,
		tracer:   otel.Tracer("property-usecase"),
	}
}

// AddProperty stores a property and notifies listeners. Properties that are
// nil or priced outside the valid band are rejected without any side
// effect.
func (uc *PropertyUsecase) AddProperty(ctx context.Context, property *domain.Property) {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.AddProperty")
	defer span.End()

	if property == nil {
		uc.logger.Warn("PropertyUsecase.AddProperty: nil property, ignoring")
		return
	}
	if !property.IsValidPrice() {
		uc.logger.Warn("PropertyUsecase.AddProperty: price outside valid range, ignoring",
			"property_id", property.ID, "price", property.Price)
		return
	}
	span.SetAttributes(attribute.String("property.id", property.ID))

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Add(ctx, property); err != nil {
		uc.logger.Error("PropertyUsecase.AddProperty: failed to store property",
			"property_id", property.ID, "error", err.Error())
		return
	}
	uc.logger.Info("PropertyUsecase.AddProperty: property added",
		"property_id", property.ID, "address", property.Address, "price", property.Price)
	uc.notifier.NotifyPropertyCreated(property)
}

// RemoveProperty deletes a property and notifies listeners, but only when
// removal actually took an element out of storage.
func (uc *PropertyUsecase) RemoveProperty(ctx context.Context, property *domain.Property) {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.RemoveProperty")
	defer span.End()

	if property == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed, err := uc.repo.Remove(ctx, property.ID)
	if err != nil {
		uc.logger.Error("PropertyUsecase.RemoveProperty: failed to remove property",
			"property_id", property.ID, "error", err.Error())
		return
	}
	if !removed {
		return
	}
	uc.logger.Info("PropertyUsecase.RemoveProperty: property removed", "property_id", property.ID)
	uc.notifier.NotifyPropertyRemoved(property)
}

// UpdatePropertyPrice assigns a new price, refreshes the modification
// timestamp, persists the change and then notifies listeners with both the
// old and the new price. Listeners are only notified after the update
// durably applied.
func (uc *PropertyUsecase) UpdatePropertyPrice(ctx context.Context, property *domain.Property, newPrice float64) {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.UpdatePropertyPrice")
	defer span.End()

	if property == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	oldPrice := property.Price
	property.Price = newPrice
	property.Touch()

	if err := uc.repo.Update(ctx, property); err != nil {
		uc.logger.Error("PropertyUsecase.UpdatePropertyPrice: failed to persist price change",
			"property_id", property.ID, "error", err.Error())
		return
	}
	uc.logger.Info("PropertyUsecase.UpdatePropertyPrice: price updated",
		"property_id", property.ID, "old_price", oldPrice, "new_price", newPrice)
	uc.notifier.NotifyPriceChange(property, oldPrice, newPrice)
}

// FilterProperties applies a filter to a snapshot of the catalog. A nil
// filter returns the unfiltered snapshot.
func (uc *PropertyUsecase) FilterProperties(ctx context.Context, f filter.PropertyFilter) []*domain.Property {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.FilterProperties")
	defer span.End()

	properties := uc.snapshot(ctx)
	if f == nil {
		return properties
	}
	span.SetAttributes(attribute.String("filter", f.Description()))
	uc.logger.Debug("PropertyUsecase.FilterProperties: applying filter", "filter", f.Description())
	return f.Apply(properties)
}

// SortProperties orders a snapshot of the catalog. A nil strategy returns
// the snapshot in insertion order.
func (uc *PropertyUsecase) SortProperties(ctx context.Context, s strategy.SortStrategy) []*domain.Property {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.SortProperties")
	defer span.End()

	properties := uc.snapshot(ctx)
	if s == nil {
		return properties
	}
	span.SetAttributes(attribute.String("strategy", s.Description()))
	uc.logger.Debug("PropertyUsecase.SortProperties: applying strategy", "strategy", s.Description())
	return s.Sort(properties)
}

// FilterAndSort filters first and sorts the filtered subset. The order
// matters: filtering preserves insertion order, which the stable sort then
// uses to break ties.
func (uc *PropertyUsecase) FilterAndSort(ctx context.Context, f filter.PropertyFilter, s strategy.SortStrategy) []*domain.Property {
	ctx, span := uc.tracer.Start(ctx, "PropertyUsecase.FilterAndSort")
	defer span.End()

	filtered := uc.FilterProperties(ctx, f)
	if s == nil {
		return filtered
	}
	return s.Sort(filtered)
}

// FindPropertyByID returns a copy of the property with the given ID, or nil
// when no such property exists. Absence is not an error.
func (uc *PropertyUsecase) FindPropertyByID(ctx context.Context, id string) *domain.Property {
	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return property
}

// AllProperties returns a defensive copy of the whole catalog.
func (uc *PropertyUsecase) AllProperties(ctx context.Context) []*domain.Property {
	return uc.snapshot(ctx)
}

// PropertyCount returns the number of stored properties.
func (uc *PropertyUsecase) PropertyCount(ctx context.Context) int {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		uc.logger.Error("PropertyUsecase.PropertyCount: failed to count properties", "error", err.Error())
		return 0
	}
	return count
}

// Subscribe registers a listener for catalog change notifications.
func (uc *PropertyUsecase) Subscribe(listener observer.PropertyListener) {
	uc.notifier.Subscribe(listener)
}

// Unsubscribe removes a listener.
func (uc *PropertyUsecase) Unsubscribe(listener observer.PropertyListener) {
	uc.notifier.Unsubscribe(listener)
}

// UnsubscribeAll clears the listener registry.
func (uc *PropertyUsecase) UnsubscribeAll() {
	uc.notifier.UnsubscribeAll()
}

// ListenerCount returns the number of registered listeners.
func (uc *PropertyUsecase) ListenerCount() int {
	return uc.notifier.ListenerCount()
}

func (uc *PropertyUsecase) snapshot(ctx context.Context) []*domain.Property {
	properties, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("PropertyUsecase.snapshot: failed to read catalog", "error", err.Error())
		return nil
	}
	return properties
}
