package di

import (
	"context"
	"io"

	"keyword_backend/internal/app/config"
	"keyword_backend/internal/feature/keywords/adapters/vision"
	"keyword_backend/internal/feature/keywords/usecase"
)

// NewTextRecognizer creates the OCR backend for POST /analyze/image.
// It returns (nil, nil, nil) when VISION_ENABLED is false.
func NewTextRecognizer(ctx context.Context, cfg *config.Config) (usecase.TextRecognizer, io.Closer, error) {
	if !cfg.VisionEnabled {
		return nil, nil, nil
	}
	r, err := vision.NewVisionTextRecognizer(ctx)
	if err != nil {
		return nil, nil, err
	}
	return r, r, nil
}
