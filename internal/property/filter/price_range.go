package filter

import (
	"fmt"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// PriceRangeFilter keeps properties whose price lies inside the closed
// interval [min, max].
type PriceRangeFilter struct {
	min float64
	max float64
}

func NewPriceRangeFilter(min, max float64) *PriceRangeFilter {
	return &PriceRangeFilter{min: min, max: max}
}

func (f *PriceRangeFilter) Apply(properties []*domain.Property) []*domain.Property {
	result := make([]*domain.Property, 0, len(properties))
	for _, p := range properties {
		if p.Price >= f.min && p.Price <= f.max {
			result = append(result, p)
		}
	}
	return result
}

func (f *PriceRangeFilter) Description() string {
	return fmt.Sprintf("price between R$ %.2f and R$ %.2f", f.min, f.max)
}
