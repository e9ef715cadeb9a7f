// Package cache stores computed score results in Redis, keyed by a digest of
// the scoring inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// KeyPrefix namespaces score entries. Bump the version segment whenever the
// scoring rules change.
const KeyPrefix = "ats:score:v1:"

// NewClient creates a Redis client from configuration. A URL takes
// precedence over the discrete address fields.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is empty")
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	}), nil
}

// ScoreCache is a Redis-backed cache of score results. A nil *ScoreCache is
// valid and behaves as an always-empty cache.
type ScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps client. Entries expire after ttl; zero means no expiry.
func New(client *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl}
}

// Key derives the cache key for one set of scoring inputs. Absent and empty
// résumé collections hash identically since they score identically.
func Key(resume *types.ResumeProfile, ideal *types.IdealProfile, full *types.ResumeProfile) (string, error) {
	payload := struct {
		Resume types.ResumeProfile  `json:"resume"`
		Ideal  *types.IdealProfile  `json:"ideal"`
		Full   *types.ResumeProfile `json:"full"`
	}{
		Resume: resume.Normalize(),
		Ideal:  ideal,
	}
	if full != nil {
		normalized := full.Normalize()
		payload.Full = &normalized
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key input: %w", err)
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for key. A miss is (nil, false, nil).
func (c *ScoreCache) Get(ctx context.Context, key string) (*types.ScoreResult, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached score: %w", err)
	}
	return &result, true, nil
}

// Set stores result under key with the configured TTL.
func (c *ScoreCache) Set(ctx context.Context, key string, result *types.ScoreResult) error {
	if c == nil || result == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping tests the Redis connection
func (c *ScoreCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *ScoreCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
