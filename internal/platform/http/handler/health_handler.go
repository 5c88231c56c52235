// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"keyword_backend/internal/api"
)

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを生成します。
// pipelineには使用中のNLPパイプライン名を渡し、レスポンスに含めます。
func NewHealth(pipeline string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Pipeline: pipeline})
		}
	}
}
