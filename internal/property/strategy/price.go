package strategy

import (
	"fmt"
	"sort"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// PriceSortStrategy orders properties numerically by price. The sort is
// stable in both directions: equal prices keep their original relative
// order.
type PriceSortStrategy struct {
	order SortOrder
}

func NewPriceSortStrategy(order SortOrder) *PriceSortStrategy {
	return &PriceSortStrategy{order: order}
}

func (s *PriceSortStrategy) Sort(properties []*domain.Property) []*domain.Property {
	sorted := make([]*domain.Property, len(properties))
	copy(sorted, properties)

	sort.SliceStable(sorted, func(i, j int) bool {
		if s.order == Ascending {
			return sorted[i].Price < sorted[j].Price
		}
		return sorted[i].Price > sorted[j].Price
	})
	return sorted
}

func (s *PriceSortStrategy) Description() string {
	return fmt.Sprintf("sort by price (%s)", s.order)
}
