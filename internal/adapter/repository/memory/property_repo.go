// Package memory holds the in-process property repository the catalog
// service owns. The backing slice is private: properties are cloned on the
// way in and on the way out, so callers can never alias internal storage.
package memory

import (
	"context"
	"sync"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type PropertyRepository struct {
	mu         sync.RWMutex
	properties []*domain.Property
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

// NewPropertyRepositoryWith seeds the repository with copies of the given
// properties.
func NewPropertyRepositoryWith(properties []*domain.Property) *PropertyRepository {
	return &PropertyRepository{properties: domain.CloneAll(properties)}
}

func (r *PropertyRepository) Add(ctx context.Context, property *domain.Property) error {
	if property == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = append(r.properties, property.Clone())
	return nil
}

// Remove deletes the property with the given ID. It reports whether an
// element actually left storage.
func (r *PropertyRepository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.properties {
		if p.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if property == nil {
		return domain.ErrInvalidPropertyData
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.properties {
		if p.ID == property.ID {
			r.properties[i] = property.Clone()
			return nil
		}
	}
	return domain.ErrPropertyNotFound
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.properties {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneAll(r.properties), nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.properties), nil
}

func (r *PropertyRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = nil
	return nil
}
