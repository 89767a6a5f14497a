package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 2 * time.Minute

// Cache is a read-through cache for availability responses. A zero
// Cache (no redis configured or unreachable) is valid: every method
// becomes a no-op and callers fall back to computing the result.
type Cache struct {
	rdb *redis.Client
}

func New(addr, password string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
		return &Cache{}
	}

	return &Cache{rdb: rdb}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Cached entries embed a per-staff version; bumping the version on any
// schedule or booking write invalidates every date/service combination
// for that staff member without key scans.
func (c *Cache) staffVersion(ctx context.Context, staffID uint) int64 {
	if !c.Enabled() {
		return 0
	}
	v, err := c.rdb.Get(ctx, fmt.Sprintf("availability:ver:%d", staffID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *Cache) BumpStaff(ctx context.Context, staffID uint) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, fmt.Sprintf("availability:ver:%d", staffID)).Err(); err != nil {
		log.Printf("cache bump failed for staff %d: %v", staffID, err)
	}
}

func (c *Cache) AvailabilityKey(
	ctx context.Context,
	staffID uint,
	serviceID uint,
	requestedBranch uint,
	activeBranch uint,
	date string,
) string {
	return fmt.Sprintf(
		"availability:%d:%d:%d:%d:%d:%s",
		staffID,
		c.staffVersion(ctx, staffID),
		serviceID,
		requestedBranch,
		activeBranch,
		date,
	)
}

func (c *Cache) GetAvailability(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetAvailability(ctx context.Context, key string, v any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, availabilityTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}
