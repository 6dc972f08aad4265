// README: Redis-backed cache for provider responses, keyed by request hash.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResponseCache memoizes provider responses for a short TTL so repeated
// identical searches within a conversation don't re-hit paid APIs.
// Every operation fails open: a broken Redis only costs cache hits.
type ResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewResponseCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *ResponseCache {
	return &ResponseCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *ResponseCache) key(kind string, req any) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("search:%s:%s", kind, hex.EncodeToString(sum[:16]))
}

// Get loads a cached response into out; false on miss or any failure.
func (c *ResponseCache) Get(ctx context.Context, kind string, req any, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(kind, req)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("cache read failed", zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// Set stores a response; failures are logged and dropped.
func (c *ResponseCache) Set(ctx context.Context, kind string, req any, val any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(kind, req), raw, c.ttl).Err(); err != nil {
		c.log.Debug("cache write failed", zap.Error(err))
	}
}
