// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"keyword_backend/internal/app/config"
	"keyword_backend/internal/feature/keywords/adapters/gemini"
	"keyword_backend/internal/feature/keywords/adapters/prose"
	"keyword_backend/internal/feature/keywords/adapters/remote"
	"keyword_backend/internal/feature/keywords/usecase"
	"keyword_backend/internal/platform/cache"
	infrahttp "keyword_backend/internal/platform/http"
)

// NewPipeline creates the NLP pipeline selected by cfg.Pipeline.
// If rdb is non-nil, the pipeline is wrapped with a Redis read-through cache.
func NewPipeline(ctx context.Context, cfg *config.Config, rdb *redis.Client) (usecase.Pipeline, error) {
	name := cfg.Pipeline
	if name == "" {
		name = prose.Name
	}

	var p usecase.Pipeline
	switch name {
	case prose.Name:
		p = prose.NewProsePipeline()
	case gemini.Name:
		g, err := gemini.NewGeminiPipeline(ctx, gemini.LoadConfig())
		if err != nil {
			return nil, err
		}
		p = g
	case remote.Name:
		rc := remote.LoadConfig()
		r, err := remote.NewRemotePipeline(rc, infrahttp.NewHTTPClient(rc.Timeout))
		if err != nil {
			return nil, err
		}
		p = r
	default:
		return nil, fmt.Errorf("unknown NLP pipeline %q (want %s, %s or %s)", cfg.Pipeline, prose.Name, gemini.Name, remote.Name)
	}

	if rdb == nil {
		return p, nil
	}
	return cache.NewCachingPipeline(rdb, cfg.CacheTTL, p, cfg.CacheNS, name), nil
}
