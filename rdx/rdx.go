package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionHash = "sessions"

// Cache wraps the redis client used for session bookkeeping and hot reads.
type Cache struct {
	Conn *redis.Client
}

func New(addr string) *Cache {
	return &Cache{
		Conn: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// StoreSession records the active token for a user. Advisory only: the JWT
// itself remains the credential.
func (c *Cache) StoreSession(ctx context.Context, userID, token string) error {
	return c.Conn.HSet(ctx, sessionHash, userID, token).Err()
}

// DropSession removes a user's session entry on logout.
func (c *Cache) DropSession(ctx context.Context, userID string) error {
	return c.Conn.HDel(ctx, sessionHash, userID).Err()
}

// SetWithExpiry caches a value with TTL.
func (c *Cache) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.Conn.Set(ctx, key, value, ttl).Err()
}

// Get returns the cached value, or "" when the key is absent.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Del removes a cached key, used to invalidate derived data after writes.
func (c *Cache) Del(ctx context.Context, key string) error {
	return c.Conn.Del(ctx, key).Err()
}
