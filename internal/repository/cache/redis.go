package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=redis.go -destination=mocks/mock_cache.go -package=mocks RecordCache

// RecordCache - кэш отдельных записей по ключу "<resource>:<id>"
type RecordCache interface {
	Get(ctx context.Context, resource string, id int64, dst any) (bool, error)
	Set(ctx context.Context, resource string, id int64, value any) error
	Invalidate(ctx context.Context, resource string, id int64) error
}

// RedisRecordCache - реализация RecordCache поверх Redis
type RedisRecordCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisRecordCache создает кэш с заданным временем жизни записей
func NewRedisRecordCache(client *redis.Client, ttl time.Duration) *RedisRecordCache {
	return &RedisRecordCache{
		redisClient: client,
		ttl:         ttl,
	}
}

func key(resource string, id int64) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

// Get пытается получить запись из Redis, false - промах кэша
func (c *RedisRecordCache) Get(ctx context.Context, resource string, id int64, dst any) (bool, error) {
	val, err := c.redisClient.Get(ctx, key(resource, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", resource, err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", resource, err)
	}
	return true, nil
}

// Set сохраняет запись в Redis
func (c *RedisRecordCache) Set(ctx context.Context, resource string, id int64, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", resource, err)
	}
	if err := c.redisClient.Set(ctx, key(resource, id), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", resource, err)
	}
	return nil
}

// Invalidate удаляет запись из кэша
func (c *RedisRecordCache) Invalidate(ctx context.Context, resource string, id int64) error {
	if err := c.redisClient.Del(ctx, key(resource, id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s cache: %w", resource, err)
	}
	return nil
}

// Nop - кэш-заглушка, когда Redis не настроен
type Nop struct{}

func (Nop) Get(context.Context, string, int64, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, int64, any) error         { return nil }
func (Nop) Invalidate(context.Context, string, int64) error       { return nil }
