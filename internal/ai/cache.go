package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// ResponseCache is the subset of the cache layer the generator needs. A nil
// or unavailable cache is a transparent pass-through.
type ResponseCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Cached memoizes structured generations by prompt hash. Only successful
// responses are stored; provider errors always reach the caller so its
// deterministic fallback can run.
type Cached struct {
	next  Generator
	cache ResponseCache
	ttl   time.Duration
}

func NewCached(next Generator, cache ResponseCache, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cached{next: next, cache: cache, ttl: ttl}
}

func (c *Cached) GenerateStructured(ctx context.Context, prompt string) (json.RawMessage, error) {
	key := promptKey(prompt)

	if c.cache != nil {
		var hit json.RawMessage
		if ok, err := c.cache.GetJSON(ctx, key, &hit); err == nil && ok && len(hit) > 0 {
			return hit, nil
		}
	}

	raw, err := c.next.GenerateStructured(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, raw, c.ttl)
	}
	return raw, nil
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "ai:gen:" + hex.EncodeToString(sum[:])
}
