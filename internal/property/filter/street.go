package filter

import (
	"fmt"
	"strings"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// StreetFilter keeps properties whose address contains the street name as a
// case-sensitive substring.
type StreetFilter struct {
	street string
}

func NewStreetFilter(street string) *StreetFilter {
	return &StreetFilter{street: street}
}

func (f *StreetFilter) Apply(properties []*domain.Property) []*domain.Property {
	result := make([]*domain.Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(p.Address, f.street) {
			result = append(result, p)
		}
	}
	return result
}

func (f *StreetFilter) Description() string {
	return fmt.Sprintf("properties on street: %s", f.street)
}
