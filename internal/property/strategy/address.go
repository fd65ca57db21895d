package strategy

import (
	"fmt"
	"sort"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// AddressSortStrategy orders properties by the full address string using
// plain byte-wise comparison, stable in both directions.
type AddressSortStrategy struct {
	order SortOrder
}

func NewAddressSortStrategy(order SortOrder) *AddressSortStrategy {
	return &AddressSortStrategy{order: order}
}

func (s *AddressSortStrategy) Sort(properties []*domain.Property) []*domain.Property {
	sorted := make([]*domain.Property, len(properties))
	copy(sorted, properties)

	sort.SliceStable(sorted, func(i, j int) bool {
		if s.order == Ascending {
			return sorted[i].Address < sorted[j].Address
		}
		return sorted[i].Address > sorted[j].Address
	})
	return sorted
}

func (s *AddressSortStrategy) Description() string {
	return fmt.Sprintf("sort by address (%s)", s.order)
}
