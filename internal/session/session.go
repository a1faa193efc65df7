// Package session caches the active player's record for the lifetime of a
// session, so repeat lookups don't hit the backing store. The cache lives in
// process memory and is mirrored to Redis when a client is available, which
// lets the record survive a restart within the session window.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"truth_buddy_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKey   = "truth_buddy_user_session"
	sessionTTL = 24 * time.Hour
)

type Cache struct {
	mu   sync.RWMutex
	user *model.User
	rdb  *redis.Client
}

// NewCache builds a session cache. rdb may be nil; the cache then works in
// memory only.
func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get returns the cached current user, or nil when no session is active.
func (c *Cache) Get(ctx context.Context) *model.User {
	c.mu.RLock()
	u := c.user
	c.mu.RUnlock()
	if u != nil {
		return u
	}

	if c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil
	}
	var stored model.User
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}
	c.mu.Lock()
	c.user = &stored
	c.mu.Unlock()
	return &stored
}

// Put replaces the cached record. The Redis mirror is best effort.
func (c *Cache) Put(ctx context.Context, u *model.User) {
	c.mu.Lock()
	c.user = u
	c.mu.Unlock()

	if c.rdb == nil || u == nil {
		return
	}
	if b, err := json.Marshal(u); err == nil {
		c.rdb.Set(ctx, cacheKey, b, sessionTTL)
	}
}

// Clear drops the session. The underlying user record is untouched.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()

	if c.rdb != nil {
		c.rdb.Del(ctx, cacheKey)
	}
}
