package filter

import (
	"fmt"
	"strings"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// Operator is the logical combinator of a CompositeFilter.
type Operator string

const (
	And Operator = "AND"
	Or  Operator = "OR"
)

// CompositeFilter combines sub-filters with AND or OR. With no sub-filters
// it is the identity filter.
type CompositeFilter struct {
	operator Operator
	filters  []PropertyFilter
}

func NewCompositeFilter(operator Operator, filters ...PropertyFilter) *CompositeFilter {
	return &CompositeFilter{operator: operator, filters: filters}
}

func (f *CompositeFilter) Operator() Operator {
	return f.operator
}

func (f *CompositeFilter) Apply(properties []*domain.Property) []*domain.Property {
	if len(f.filters) == 0 {
		return properties
	}
	if f.operator == And {
		return f.applyAnd(properties)
	}
	return f.applyOr(properties)
}

// applyAnd narrows the working set through each sub-filter in turn.
func (f *CompositeFilter) applyAnd(properties []*domain.Property) []*domain.Property {
	result := properties
	for _, sub := range f.filters {
		result = sub.Apply(result)
		if len(result) == 0 {
			break
		}
	}
	return result
}

// applyOr keeps every property matched by at least one sub-filter. Each
// sub-filter runs once against the full input; the union preserves the
// input order and contains no duplicates.
func (f *CompositeFilter) applyOr(properties []*domain.Property) []*domain.Property {
	matched := make(map[*domain.Property]struct{})
	for _, sub := range f.filters {
		for _, p := range sub.Apply(properties) {
			matched[p] = struct{}{}
		}
	}
	result := make([]*domain.Property, 0, len(matched))
	for _, p := range properties {
		if _, ok := matched[p]; ok {
			result = append(result, p)
		}
	}
	return result
}

func (f *CompositeFilter) Description() string {
	descriptions := make([]string, len(f.filters))
	for i, sub := range f.filters {
		descriptions[i] = sub.Description()
	}
	return fmt.Sprintf("(%s)", strings.Join(descriptions, " "+string(f.operator)+" "))
}
