// Package config はサーバーとCLIで共通のアプリケーション設定を読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション設定です。アダプター固有の設定は各パッケージのLoadConfigで読み込みます。
type Config struct {
	Port          string        // HTTPサーバーのポート
	AppEnv        string        // "production" ならJSONログ
	LogLevel      string        // slogのログレベル
	LogFile       string        // ローテーション付きログファイル（空なら標準出力のみ）
	Pipeline      string        // prose | gemini | remote
	MinCount      int           // キーワード採用に必要な最小出現回数
	CacheTTL      time.Duration // 解析結果キャッシュのTTL
	CacheNS       string        // 解析結果キャッシュのnamespace
	VisionEnabled bool          // POST /analyze/image を有効にするか
}

// Load は環境変数から設定を読み込みます。
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		Pipeline:      getEnv("NLP_PIPELINE", "prose"),
		MinCount:      getEnvInt("KEYWORDS_MIN_COUNT", 1),
		CacheTTL:      getEnvDuration("NLP_CACHE_TTL", time.Hour),
		CacheNS:       getEnv("NLP_CACHE_NAMESPACE", "nlp"),
		VisionEnabled: getEnvBool("VISION_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return b
}
