// Package cache provides caching decorators for the NLP pipeline.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
)

const (
	defaultTTL       = time.Hour
	defaultNamespace = "nlp"
)

// CachingPipeline decorates a Pipeline with a Redis read-through cache.
// The pipeline is a pure function of its input text, so entries never need
// invalidation beyond their TTL.
type CachingPipeline struct {
	inner     usecase.Pipeline
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	pipeline  string
}

var _ usecase.Pipeline = (*CachingPipeline)(nil)

// NewCachingPipeline decorates a Pipeline with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "nlp".
// pipeline names the inner pipeline and is part of every key, so switching
// pipelines against the same Redis never serves another pipeline's output.
// A nil rdb disables caching.
func NewCachingPipeline(rdb *redis.Client, ttl time.Duration, inner usecase.Pipeline, namespace, pipeline string) *CachingPipeline {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingPipeline{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
		pipeline:  safe(pipeline),
	}
}

// Analyze returns the cached analysis for text, falling back to the inner pipeline.
// Cache failures are logged and never fail the request.
func (c *CachingPipeline) Analyze(ctx context.Context, text string) (*entity.Analysis, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Analyze(ctx, text)
	}

	key := c.cacheKey(text)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Analysis
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("analysis cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to the pipeline
	out, err := c.inner.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("analysis cache write failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// Purge deletes every cached analysis in the namespace, for all pipelines,
// and returns the number of keys removed.
func (c *CachingPipeline) Purge(ctx context.Context) (int, error) {
	if c.rdb == nil {
		return 0, nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates a cache key for a text: <namespace>:<pipeline>:<sha256>.
func (c *CachingPipeline) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.namespace + ":" + c.pipeline + ":" + hex.EncodeToString(sum[:])
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPipeline) deleteByPattern(ctx context.Context, pattern string) (int, error) {
	var cursor uint64
	deleted := 0
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
