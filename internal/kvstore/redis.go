package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisBackend = "redis"

// Redis stores keys in a Redis database under an optional prefix.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisClient builds a client from either a redis:// URL or a bare host:port.
func NewRedisClient(addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr, prefix string) (*Redis, error) {
	rdb, err := NewRedisClient(addr)
	if err != nil {
		return nil, err
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, wrap(redisBackend, "ping", "", err)
	}
	return NewRedis(rdb, prefix), nil
}

// NewRedis wraps an existing client.
func NewRedis(rdb *redis.Client, prefix string) *Redis {
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	s, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrap(redisBackend, "get", key, err)
	}
	return s, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return wrap(redisBackend, "set", key, r.rdb.Set(ctx, r.key(key), value, 0).Err())
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return wrap(redisBackend, "remove", key, r.rdb.Del(ctx, r.key(key)).Err())
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
