package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache adapts go-redis to the store.Cache interface
type redisCache struct {
	cli *redis.Client
}

var _ Cache = (*redisCache)(nil)

func newRedisCache(ctx context.Context, cfg RedisConfig) (*redisCache, error) {
	cli := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisCache{cli: cli}, nil
}

// Get returns (value, found, error); a missing key is not an error
func (r *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.cli.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *redisCache) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return r.cli.Set(ctx, key, val, ttl).Err()
}

func (r *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.cli.Del(ctx, keys...).Err()
}

func (r *redisCache) Ping(ctx context.Context) error {
	if r == nil || r.cli == nil {
		return errors.New("store: nil redis adapter")
	}
	return r.cli.Ping(ctx).Err()
}

func (r *redisCache) Close() error { return r.cli.Close() }
