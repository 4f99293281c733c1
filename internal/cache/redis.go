// internal/cache/redis.go
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis translates Client calls into Redis commands. A nil inner client
// records the disconnected state: every operation short-circuits with
// ErrNotConnected instead of dialing, so a backend that was down at startup
// stays out of the request path entirely.
//
// Per-operation latency is bounded by the go-redis client's own dial, read,
// and write timeouts; nothing here blocks indefinitely.
type Redis struct {
	rdb *redis.Client
}

var _ Client = (*Redis)(nil)

// NewRedis wraps an established go-redis client. Pass nil when the backend
// was unreachable at startup to obtain a client that is permanently
// disconnected but safe to call.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Get returns the raw stored value for key. A missing key is ok == false
// with a nil error; only transport and server failures produce errors.
func (c *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if c.rdb == nil {
		return "", false, ErrNotConnected
	}

	value, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil // miss
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key with the given expiry. The TTL is handed to the
// backend unmodified; expiry is owned entirely by the backend.
func (c *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.rdb == nil {
		return ErrNotConnected
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes key if present. DEL reports how many keys it removed, and
// zero is a fine answer: deleting an absent key is success.
func (c *Redis) Delete(ctx context.Context, key string) error {
	if c.rdb == nil {
		return ErrNotConnected
	}
	return c.rdb.Del(ctx, key).Err()
}
