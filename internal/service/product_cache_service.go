package service

import (
	"context"
	"encoding/json"
	"time"

	"go-online-store/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached product rows
	RedisProductKeyPrefix = "product:"

	// How long a cached product row stays valid without a write
	productCacheTTL = 5 * time.Minute

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second
)

// ProductCacheService keeps a read-through cache of product rows in Redis,
// keyed by the normalized product name. It is an optimization only: the
// stock debit always runs in a database transaction, never against the
// cache, so a stale or unavailable cache can cost a query but never
// oversell. Every method tolerates a nil service or a Redis outage by
// falling through to the database.
type ProductCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewProductCacheService(redisClient *redis.Client, log *logrus.Logger) *ProductCacheService {
	return &ProductCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

// Get returns the cached product row, or nil on a miss or any Redis failure.
func (s *ProductCacheService) Get(ctx context.Context, name string) *entity.Product {
	if s == nil || s.redisClient == nil {
		return nil
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	payload, err := s.redisClient.Get(opCtx, RedisProductKeyPrefix+name).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Product cache read failed for %q: %+v", name, err)
		}
		return nil
	}

	var product entity.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		s.log.Warnf("Discarding corrupt cache entry for %q: %+v", name, err)
		s.Invalidate(ctx, name)
		return nil
	}

	return &product
}

// Set stores the product row. Failures are logged and swallowed.
func (s *ProductCacheService) Set(ctx context.Context, product *entity.Product) {
	if s == nil || s.redisClient == nil || product == nil {
		return
	}

	payload, err := json.Marshal(product)
	if err != nil {
		s.log.Warnf("Failed to marshal product %q for cache: %+v", product.Name, err)
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.redisClient.Set(opCtx, RedisProductKeyPrefix+product.Name, payload, productCacheTTL).Err(); err != nil {
		s.log.Warnf("Product cache write failed for %q: %+v", product.Name, err)
	}
}

// Invalidate drops the cache entry after a stock write or a delete.
func (s *ProductCacheService) Invalidate(ctx context.Context, name string) {
	if s == nil || s.redisClient == nil {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.redisClient.Del(opCtx, RedisProductKeyPrefix+name).Err(); err != nil {
		s.log.Warnf("Product cache invalidation failed for %q (non-fatal): %+v", name, err)
	}
}
