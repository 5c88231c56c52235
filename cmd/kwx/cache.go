package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"keyword_backend/internal/app/config"
	"keyword_backend/internal/platform/cache"
	infraredis "keyword_backend/internal/platform/redis"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Redis analysis cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached analysis in NLP_CACHE_NAMESPACE",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		rc := infraredis.LoadConfig()
		if rc.Addr == "" {
			return errors.New("REDIS_HOST is not set")
		}

		rdb, err := infraredis.NewRedisClient(cmd.Context(), rc)
		if err != nil {
			return err
		}
		defer closeLogged(rdb, "Redis client")

		return runPurge(cmd.Context(), rdb, cfg, cmd.OutOrStdout())
	},
}

// runPurge deletes every cached analysis in cfg.CacheNS and reports the count.
func runPurge(ctx context.Context, rdb *redis.Client, cfg *config.Config, out io.Writer) error {
	// Purgeは内部パイプラインを呼ばず、全パイプラインのキーを削除するためinnerは不要
	c := cache.NewCachingPipeline(rdb, cfg.CacheTTL, nil, cfg.CacheNS, cfg.Pipeline)
	n, err := c.Purge(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "deleted %d cached analyses\n", n)
	return err
}

// closeLogged closes c and logs the error instead of dropping it.
func closeLogged(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		slog.Error("Failed to close "+what, "error", err)
	}
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
