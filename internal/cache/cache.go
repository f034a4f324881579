// Package cache is an optional Redis-backed cache of FeasibilityResult,
// keyed by a deterministic content hash of the evaluation inputs.
// It is an optimization only: every failure mode —
// no Redis configured, connection error, marshal error — degrades
// silently to "not cached", never to an error the caller must handle.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arnavshah/roster-feasibility/internal/domain"
)

// Cache wraps an optional Redis client. A nil *Cache (or one built with
// no address) is always a pass-through.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a Cache. addr == "" disables caching entirely.
func New(addr, password string, db int, ttl time.Duration) *Cache {
	if addr == "" {
		return &Cache{}
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

// Enabled reports whether this cache is backed by a real Redis client.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key computes the deterministic cache key for one evaluation's inputs.
// Inputs are marshaled with sorted map keys (encoding/json's default for
// map[string]V) so the same logical input always hashes identically.
func Key(schedule domain.Schedule, cfg domain.ConstraintConfig, previousPeriodEnd []domain.ShiftAssignment) string {
	type keyInput struct {
		Schedule          domain.Schedule
		Config            domain.ConstraintConfig
		PreviousPeriodEnd []domain.ShiftAssignment
	}

	payload, err := json.Marshal(keyInput{schedule, cfg, previousPeriodEnd})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "roster-feasibility:result:" + hex.EncodeToString(sum[:])
}

// Get returns the cached result for key, if present and unexpired.
func (c *Cache) Get(ctx context.Context, key string) (domain.FeasibilityResult, bool) {
	if !c.Enabled() || key == "" {
		return domain.FeasibilityResult{}, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return domain.FeasibilityResult{}, false
	}

	var result domain.FeasibilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.FeasibilityResult{}, false
	}
	return result, true
}

// Set stores result under key with the cache's configured TTL. Errors
// are swallowed; a failed write just means the next request recomputes.
func (c *Cache) Set(ctx context.Context, key string, result domain.FeasibilityResult) {
	if !c.Enabled() || key == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, c.ttl).Err()
}
