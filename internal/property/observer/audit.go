package observer

import (
	"math"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// AuditListener writes an audit trail of catalog changes through the
// platform logger.
type AuditListener struct {
	logger *logger.Logger
}

func NewAuditListener(log *logger.Logger) *AuditListener {
	return &AuditListener{logger: log}
}

func (a *AuditListener) OnPriceChanged(property *domain.Property, oldPrice, newPrice float64) {
	operation := "INCREASE"
	if newPrice < oldPrice {
		operation = "DECREASE"
	}
	a.logger.Info("AuditListener.OnPriceChanged: price changed",
		"operation", operation,
		"address", property.Address,
		"old_price", oldPrice,
		"new_price", newPrice,
		"difference", math.Abs(newPrice-oldPrice))
}

func (a *AuditListener) OnPropertyCreated(property *domain.Property) {
	a.logger.Info("AuditListener.OnPropertyCreated: property registered",
		"property_id", property.ID,
		"address", property.Address,
		"price", property.Price)
}

func (a *AuditListener) OnPropertyRemoved(property *domain.Property) {
	a.logger.Info("AuditListener.OnPropertyRemoved: property removed",
		"property_id", property.ID,
		"address", property.Address,
		"price", property.Price)
}
