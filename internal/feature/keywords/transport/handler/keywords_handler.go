// Package handler はkeywordsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"keyword_backend/internal/api"
	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/transport/http/dto"
	"keyword_backend/internal/feature/keywords/usecase"
)

const (
	msgMissingText  = "Missing 'text' in JSON payload"
	msgInvalidText  = "Text is too short or invalid."
	msgMissingImage = "Missing 'image' in multipart payload"
	msgImageTooBig  = "Image exceeds the maximum size of 10MB."
	msgInternal     = "An internal error occurred during analysis: "
)

// KeywordsUsecase はキーワード抽出のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type KeywordsUsecase interface {
	Extract(ctx context.Context, text string) (*entity.Result, error)
	ExtractFromImage(ctx context.Context, imageData []byte) (*entity.Result, error)
}

// KeywordsHandler はキーワード抽出のHTTPリクエストを処理します。
type KeywordsHandler struct {
	uc   KeywordsUsecase
	html usecase.HTMLConverter
}

// NewKeywordsHandler はKeywordsHandlerの新しいインスタンスを生成します。
// htmlがnilの場合、"format": "html" のリクエストは400になります。
func NewKeywordsHandler(uc KeywordsUsecase, html usecase.HTMLConverter) *KeywordsHandler {
	return &KeywordsHandler{uc: uc, html: html}
}

// Analyze はテキストからキーワードを抽出します。
//
// エンドポイント: POST /analyze
// Content-Type: application/json
// ボディ: {"text": "...", "format": "text|html"}
func (h *KeywordsHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// JSONオブジェクトでないボディは "text" が無いものとして扱う
		slog.Warn("解析リクエストのデコードに失敗", "error", err, "remote_addr", c.ClientIP())
		req = nil
	}

	text, err := usecase.ValidateText(req, h.html)
	if err != nil {
		slog.Warn("解析リクエストのバリデーションに失敗", "error", err, "format", req.Format(), "remote_addr", c.ClientIP())
		h.writeError(c, err)
		return
	}

	result, err := h.uc.Extract(c.Request.Context(), text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(result))
}

// AnalyzeImage は画像内の文字をOCRで読み取り、キーワードを抽出します。
//
// エンドポイント: POST /analyze/image
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *KeywordsHandler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingImage})
		return
	}
	if file.Size > usecase.MaxImageSize {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgImageTooBig})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		h.writeError(c, &usecase.PipelineError{Err: err})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		h.writeError(c, &usecase.PipelineError{Err: err})
		return
	}

	result, err := h.uc.ExtractFromImage(c.Request.Context(), imageData)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(result))
}

// writeError はusecaseのエラーをHTTPステータスとエラーボディに変換します。
func (h *KeywordsHandler) writeError(c *gin.Context, err error) {
	var pe *usecase.PipelineError
	switch {
	case errors.Is(err, usecase.ErrMissingField):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingText})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgInvalidText})
	case errors.Is(err, usecase.ErrImageRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingImage})
	case errors.Is(err, usecase.ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgImageTooBig})
	case errors.As(err, &pe):
		slog.Error("キーワード抽出に失敗", "error", pe.Err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgInternal + pe.Error()})
	default:
		slog.Error("予期しないエラー", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgInternal + err.Error()})
	}
}

func toResponse(r *entity.Result) api.KeywordsResponse {
	kw := r.Keywords
	if kw == nil {
		kw = []string{}
	}
	return api.KeywordsResponse{Keywords: kw, Message: r.Message}
}
