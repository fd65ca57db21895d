package domain

import "context"

// PropertyRepository is the storage contract the catalog service works
// against. Implementations must return copies, never references into their
// own backing collection.
type PropertyRepository interface {
	Add(ctx context.Context, property *Property) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, property *Property) error
	FindByID(ctx context.Context, id string) (*Property, error)
	FindAll(ctx context.Context) ([]*Property, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
