package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

// PropertyCache keeps JSON copies of properties in Redis keyed by ID.
type PropertyCache struct {
	client *redis.Client
}

func NewPropertyCache(addr string) (*PropertyCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr, // e.g., "localhost:6379"
	})
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, err
	}
	return &PropertyCache{client: client}, nil
}

func (c *PropertyCache) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	data, err := c.client.Get(ctx, "property:"+id).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}
	var property domain.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *PropertyCache) SetProperty(ctx context.Context, property *domain.Property) error {
	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "property:"+property.ID, data, 1*time.Hour).Err()
}

func (c *PropertyCache) DeleteProperty(ctx context.Context, id string) error {
	return c.client.Del(ctx, "property:"+id).Err()
}

// Flush removes every cached property.
func (c *PropertyCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "property:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *PropertyCache) Close() error {
	return c.client.Close()
}
