// Package logging はアプリケーション全体のslogハンドラーを初期化します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options はロガーの初期化オプションです。
type Options struct {
	Env   string // "production" の場合はJSON、それ以外はtintによるテキスト出力
	Level string // debug, info, warn, error（既定はinfo）
	File  string // 指定した場合はローテーション付きでファイルにも出力
}

// InitLogger はslogのデフォルトロガーを設定し、後始末用の関数を返します。
func InitLogger(opts Options) (closeFn func() error) {
	var w io.Writer = os.Stdout
	closeFn = func() error { return nil }

	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, file)
		closeFn = file.Close
	}

	slog.SetDefault(slog.New(newHandler(w, opts)))
	return closeFn
}

func newHandler(w io.Writer, opts Options) slog.Handler {
	level := ParseLevel(opts.Level)
	if opts.Env == "production" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		// ファイルにエスケープシーケンスを残さない
		NoColor: opts.File != "",
	})
}

// ParseLevel はログレベル名をslog.Levelに変換します。不明な値はInfoになります。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
