package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
)

const (
	avgAgeCacheKey = "users:aggregate:age"
	countCacheKey  = "users:aggregate:count"
)

// AggregateCacheRepository caches aggregation results in Redis.
type AggregateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached aggregates
}

// NewAggregateCacheRepository creates a new repository instance with the given TTL.
func NewAggregateCacheRepository(client *redis.Client, expiration time.Duration) *AggregateCacheRepository {
	return &AggregateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAvgAgeByCity returns the cached per-city average ages. ok is false on a cache miss.
func (r *AggregateCacheRepository) GetAvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, bool, error) {
	val, err := r.client.Get(ctx, avgAgeCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Infow("aggregate cache get", "key", avgAgeCacheKey, "error", err)
		return nil, false, err
	}

	var rows []models.CityAvgAge
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		logger.Log.Infow("aggregate cache decode", "key", avgAgeCacheKey, "error", err)
		return nil, false, err
	}
	return rows, true, nil
}

// SetAvgAgeByCity caches the per-city average ages.
func (r *AggregateCacheRepository) SetAvgAgeByCity(ctx context.Context, rows []models.CityAvgAge) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, avgAgeCacheKey, data, r.exp).Err()

	logger.Log.Infow("aggregate cache set", "key", avgAgeCacheKey, "rows", len(rows), "error", err)

	return err
}

// GetCountByCity returns the cached per-city counts. ok is false on a cache miss.
func (r *AggregateCacheRepository) GetCountByCity(ctx context.Context) ([]models.CityCount, bool, error) {
	val, err := r.client.Get(ctx, countCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		logger.Log.Infow("aggregate cache get", "key", countCacheKey, "error", err)
		return nil, false, err
	}

	var rows []models.CityCount
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		logger.Log.Infow("aggregate cache decode", "key", countCacheKey, "error", err)
		return nil, false, err
	}
	return rows, true, nil
}

// SetCountByCity caches the per-city counts.
func (r *AggregateCacheRepository) SetCountByCity(ctx context.Context, rows []models.CityCount) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, countCacheKey, data, r.exp).Err()

	logger.Log.Infow("aggregate cache set", "key", countCacheKey, "rows", len(rows), "error", err)

	return err
}

// Invalidate drops both cached aggregates. Called after every write to the
// users table.
func (r *AggregateCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, avgAgeCacheKey, countCacheKey).Err()

	logger.Log.Infow("aggregate cache invalidate", "error", err)

	return err
}
