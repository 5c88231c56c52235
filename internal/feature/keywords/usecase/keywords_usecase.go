package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"keyword_backend/internal/feature/keywords/domain/entity"
)

// MaxImageSize はOCR用画像アップロードの最大サイズ（10MB）です。
const MaxImageSize = 10 * 1024 * 1024

// Pipeline はテキストを名詞句と固有表現に分解するNLPパイプラインのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Pipeline interface {
	// Analyze はテキストを解析し、名詞句と固有表現を返します。
	Analyze(ctx context.Context, text string) (*entity.Analysis, error)
}

// TextRecognizer は画像から文字列を読み取るOCRのインターフェースです。
type TextRecognizer interface {
	// RecognizeText は画像バイト列に含まれるテキストを返します。
	RecognizeText(ctx context.Context, imageData []byte) (string, error)
}

// keywordsUsecase はキーワード抽出のビジネスロジックを提供します。
type keywordsUsecase struct {
	pipeline   Pipeline
	recognizer TextRecognizer
	ranker     *Ranker
}

// NewKeywordsUsecase はkeywordsUsecaseの新しいインスタンスを生成します。
// recognizerがnilの場合、ExtractFromImageはPipelineErrorを返します。
func NewKeywordsUsecase(p Pipeline, tr TextRecognizer, r *Ranker) *keywordsUsecase {
	if r == nil {
		r = NewRanker(DefaultMinCount)
	}
	return &keywordsUsecase{pipeline: p, recognizer: tr, ranker: r}
}

// Extract は検証済みのテキストからキーワードを抽出します。
// パイプラインのエラーやpanicはPipelineErrorとして返します。
func (u *keywordsUsecase) Extract(ctx context.Context, text string) (*entity.Result, error) {
	analysis, err := u.analyze(ctx, text)
	if err != nil {
		slog.Error("NLP pipeline failed", "error", err, "text_length", len(text))
		return nil, &PipelineError{Err: err}
	}

	result := u.ranker.Rank(ExtractCandidates(analysis))
	return &result, nil
}

// ExtractFromImage は画像をOCRにかけ、読み取ったテキストからキーワードを抽出します。
func (u *keywordsUsecase) ExtractFromImage(ctx context.Context, imageData []byte) (*entity.Result, error) {
	if len(imageData) == 0 {
		return nil, ErrImageRequired
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w of %d bytes", ErrImageTooLarge, MaxImageSize)
	}
	if u.recognizer == nil {
		return nil, &PipelineError{Err: fmt.Errorf("text recognition is not configured")}
	}

	text, err := u.recognizer.RecognizeText(ctx, imageData)
	if err != nil {
		slog.Error("text recognition failed", "error", err, "image_size", len(imageData))
		return nil, &PipelineError{Err: err}
	}
	if !longEnough(text) {
		return nil, ErrInvalidInput
	}
	return u.Extract(ctx, strings.TrimSpace(text))
}

// analyze はパイプライン内部のpanicをエラーに変換します。
func (u *keywordsUsecase) analyze(ctx context.Context, text string) (a *entity.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()
	return u.pipeline.Analyze(ctx, text)
}
