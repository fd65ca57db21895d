// Package strategy implements pluggable orderings over property
// collections. A strategy always returns a freshly allocated slice; the
// input keeps its order and contents.
package strategy

import "github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"

// SortOrder selects the direction of a sort strategy.
type SortOrder string

const (
	Ascending  SortOrder = "ASCENDING"
	Descending SortOrder = "DESCENDING"
)

type SortStrategy interface {
	Sort(properties []*domain.Property) []*domain.Property
	Description() string
}
