// Package rediscache provides a Redis-backed read-through cache over the
// category repository. Categories are seeded outside the API and never
// written through it, so a TTL-bounded cache changes no observable behavior.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const categoriesKey = "trivia:categories"

// CategoryRepository wraps a domain.CategoryRepository with a Redis cache
type CategoryRepository struct {
	inner domain.CategoryRepository
	redis *redis.Client
	ttl   time.Duration
}

// NewCategoryRepository creates a new caching category repository
func NewCategoryRepository(inner domain.CategoryRepository, redis *redis.Client, ttl time.Duration) *CategoryRepository {
	return &CategoryRepository{
		inner: inner,
		redis: redis,
		ttl:   ttl,
	}
}

// FindAll retrieves every category, serving from Redis when possible. Cache
// failures fall through to the wrapped repository.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	data, err := r.redis.Get(ctx, categoriesKey).Bytes()
	if err == nil {
		var categories []domain.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Redis unreachable; serve from the store
		return r.inner.FindAll(ctx)
	}

	categories, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		// Best effort; a failed SET only costs the next request a query
		r.redis.Set(ctx, categoriesKey, data, r.ttl)
	}

	return categories, nil
}

// FindByID retrieves a category by its id. Single-category lookups are rare
// and stay on the store.
func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*domain.Category, error) {
	return r.inner.FindByID(ctx, id)
}
