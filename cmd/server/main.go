package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"keyword_backend/internal/app/config"
	"keyword_backend/internal/app/di"
	"keyword_backend/internal/app/router"
	"keyword_backend/internal/feature/keywords/adapters/htmltext"
	kwhandler "keyword_backend/internal/feature/keywords/transport/handler"
	kwusecase "keyword_backend/internal/feature/keywords/usecase"
	"keyword_backend/internal/platform/logging"
	infraredis "keyword_backend/internal/platform/redis"
)

func main() {
	// .env は任意
	_ = godotenv.Load()

	cfg := config.Load()
	closeLog := logging.InitLogger(logging.Options{Env: cfg.AppEnv, Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis（任意、解析結果のキャッシュ用）
	var rdb *redisv9.Client
	if rc := infraredis.LoadConfig(); rc.Addr == "" {
		slog.Info("REDIS_HOST is not set. Running without analysis cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, rc); err != nil {
		slog.Warn("Redis unavailable. Running without analysis cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// NLPパイプラインは起動時に一度だけ生成し、以降は読み取り専用
	pipeline, err := di.NewPipeline(ctx, cfg, rdb)
	if err != nil {
		slog.Error("failed to initialize NLP pipeline", "pipeline", cfg.Pipeline, "error", err)
		os.Exit(1)
	}

	recognizer, closer, err := di.NewTextRecognizer(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize text recognizer", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Error("Failed to close text recognizer", "error", err)
			}
		}()
	}

	// Usecase
	keywordsUC := kwusecase.NewKeywordsUsecase(pipeline, recognizer, kwusecase.NewRanker(cfg.MinCount))

	// Handler
	keywordsH := kwhandler.NewKeywordsHandler(keywordsUC, htmltext.NewConverter())

	// ルータ生成
	r := router.NewRouter(keywordsH, router.Options{Pipeline: cfg.Pipeline, ImageUpload: cfg.VisionEnabled})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "pipeline", cfg.Pipeline, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
