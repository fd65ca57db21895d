// Package observer implements the catalog's change-notification mechanism:
// a subscriber registry with synchronous fan-out of create, remove and
// price-change events.
package observer

import "github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"

// PropertyListener receives catalog change notifications. Callbacks run
// synchronously on the goroutine performing the mutation.
type PropertyListener interface {
	OnPropertyCreated(property *domain.Property)
	OnPropertyRemoved(property *domain.Property)
	OnPriceChanged(property *domain.Property, oldPrice, newPrice float64)
}
