package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SummaryCache keeps review-summary payloads in Redis so the public
// summary endpoint is not recomputed on every hit. A nil *SummaryCache
// is valid and disables caching; cache failures degrade to a recompute
// and are only logged.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns nil when redisURL is empty or unparsable.
func New(redisURL string, ttl time.Duration) *SummaryCache {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("summary cache disabled, bad REDIS_URL: %v", err)
		return nil
	}

	return &SummaryCache{
		rdb: redis.NewClient(opt),
		ttl: ttl,
	}
}

func (c *SummaryCache) key(photographerID uint) string {
	return fmt.Sprintf("review_summary:%d", photographerID)
}

func (c *SummaryCache) Get(ctx context.Context, photographerID uint, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, c.key(photographerID)).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *SummaryCache) Set(ctx context.Context, photographerID uint, v any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(photographerID), raw, c.ttl).Err(); err != nil {
		log.Printf("summary cache set failed: %v", err)
	}
}

func (c *SummaryCache) Invalidate(ctx context.Context, photographerID uint) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, c.key(photographerID)).Err(); err != nil {
		log.Printf("summary cache invalidate failed: %v", err)
	}
}
