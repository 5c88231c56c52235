// Package usecase はkeywordsフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrMissingField is returned when the payload has no "text" key.
	ErrMissingField = errors.New("missing 'text' in JSON payload")

	// ErrInvalidInput is returned when "text" is not a string or is too short after trimming.
	ErrInvalidInput = errors.New("text is too short or invalid")

	// ErrImageRequired is returned when an OCR request carries no image bytes.
	ErrImageRequired = errors.New("image data is empty")

	// ErrImageTooLarge is returned when an OCR request exceeds MaxImageSize.
	ErrImageTooLarge = errors.New("image size exceeds maximum")
)

// PipelineError wraps any fault raised by the NLP pipeline or the OCR backend.
// Transport layers translate it into an internal-error response.
type PipelineError struct {
	Err error
}

func (e *PipelineError) Error() string {
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
