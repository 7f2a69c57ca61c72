package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesCacheKey   = "trivia:categories"
	defaultCategoriesTTL = time.Minute
)

// Cache keeps the category mapping in Redis under a single key with a TTL.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ CategoryCache = (*Cache)(nil)

func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCategoriesTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (c *Cache) Get(ctx context.Context) (CategoryMap, error) {
	data, err := c.client.Get(ctx, categoriesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var categories CategoryMap
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Cache) Set(ctx context.Context, categories CategoryMap) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesCacheKey, data, c.ttl).Err()
}
