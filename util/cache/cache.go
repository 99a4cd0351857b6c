package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New dials redis for the report cache. The client is lazy; a dead redis
// shows up on first use, and callers are expected to treat that as a
// degraded read, not a failure.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Redis adapts a redis client to the byte-level Get/Set the report service
// wants. Get reports a missing key as (nil, nil).
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis { return &Redis{client: client} }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, val, ttl).Err()
}
