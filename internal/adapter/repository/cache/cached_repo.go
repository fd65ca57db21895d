package cache

import (
	"context"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// Cache is what CachedPropertyRepository needs from the Redis adapter.
type Cache interface {
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	SetProperty(ctx context.Context, property *domain.Property) error
	DeleteProperty(ctx context.Context, id string) error
	Flush(ctx context.Context) error
}

// CachedPropertyRepository decorates a PropertyRepository with a
// cache-aside layer: FindByID reads through the cache, mutations keep it
// coherent. The cache is best-effort; its failures are logged and the
// repository stays authoritative.
type CachedPropertyRepository struct {
	repo   domain.PropertyRepository
	cache  Cache
	logger *logger.Logger
}

func NewCachedPropertyRepository(repo domain.PropertyRepository, cache Cache, log *logger.Logger) *CachedPropertyRepository {
	return &CachedPropertyRepository{repo: repo, cache: cache, logger: log}
}

func (r *CachedPropertyRepository) Add(ctx context.Context, property *domain.Property) error {
	if err := r.repo.Add(ctx, property); err != nil {
		return err
	}
	if err := r.cache.SetProperty(ctx, property); err != nil {
		r.logger.Error("CachedPropertyRepository.Add: failed to cache property",
			"property_id", property.ID, "error", err.Error())
	}
	return nil
}

func (r *CachedPropertyRepository) Remove(ctx context.Context, id string) (bool, error) {
	removed, err := r.repo.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	if err := r.cache.DeleteProperty(ctx, id); err != nil {
		r.logger.Error("CachedPropertyRepository.Remove: failed to evict property",
			"property_id", id, "error", err.Error())
	}
	return true, nil
}

func (r *CachedPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if err := r.repo.Update(ctx, property); err != nil {
		return err
	}
	if err := r.cache.SetProperty(ctx, property); err != nil {
		r.logger.Error("CachedPropertyRepository.Update: failed to refresh cached property",
			"property_id", property.ID, "error", err.Error())
	}
	return nil
}

func (r *CachedPropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	cached, err := r.cache.GetProperty(ctx, id)
	if err != nil {
		r.logger.Error("CachedPropertyRepository.FindByID: cache read failed, falling back",
			"property_id", id, "error", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	property, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetProperty(ctx, property); err != nil {
		r.logger.Error("CachedPropertyRepository.FindByID: failed to cache property",
			"property_id", id, "error", err.Error())
	}
	return property, nil
}

func (r *CachedPropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	return r.repo.FindAll(ctx)
}

func (r *CachedPropertyRepository) Count(ctx context.Context) (int, error) {
	return r.repo.Count(ctx)
}

func (r *CachedPropertyRepository) Clear(ctx context.Context) error {
	if err := r.repo.Clear(ctx); err != nil {
		return err
	}
	if err := r.cache.Flush(ctx); err != nil {
		r.logger.Error("CachedPropertyRepository.Clear: failed to flush cache", "error", err.Error())
	}
	return nil
}
