// Package router はginエンジンとルート定義を提供します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	kwhandler "keyword_backend/internal/feature/keywords/transport/handler"
	"keyword_backend/internal/platform/http/handler"
)

// Options はルーティングの切り替えです。
type Options struct {
	Pipeline    string // /healthz に表示するパイプライン名
	ImageUpload bool   // POST /analyze/image を登録するか
}

// NewRouter はginエンジンを生成し、全ルートを登録します。
func NewRouter(keywords *kwhandler.KeywordsHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// ブラウザ拡張から呼ばれるため、すべてのオリジンを許可
	r.Use(cors.Default())

	// 導通確認用
	health := handler.NewHealth(opts.Pipeline)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// キーワード抽出
	r.POST("/analyze", keywords.Analyze)
	if opts.ImageUpload {
		r.POST("/analyze/image", keywords.AnalyzeImage)
	}

	return r
}
