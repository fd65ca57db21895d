// Package filter implements composable predicates over property
// collections. Every filter is a pure function from an input slice to an
// order-preserving subsequence of it; the input is never mutated.
package filter

import "github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"

type PropertyFilter interface {
	Apply(properties []*domain.Property) []*domain.Property

	// Description renders the filter's defining parameters for audit logs.
	Description() string
}
