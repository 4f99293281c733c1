// Package cache implements the look-aside caching layer for the book review
// service. The only value ever cached is the aggregate book list, stored as
// JSON under a single well-known key; every other read goes straight to the
// database.
//
// The package is deliberately forgiving: a missing, broken, or unreachable
// cache backend degrades every operation to a miss or a no-op. The hosting
// process never fails to start, and no request ever fails, because of the
// cache.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotConnected is returned by every operation on a client whose backend
// was unreachable at startup. The disconnected state is permanent for the
// lifetime of the process; there is no reconnection schedule.
var ErrNotConnected = errors.New("cache: backend not connected")

// Client is the minimal key-value surface the service needs from a cache
// backend. Implementations must report a missing key on Get as ok == false
// with a nil error, reserving errors for transport and server failures, and
// must treat deleting an absent key as success.
type Client interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
