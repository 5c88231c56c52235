package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword_backend/internal/feature/keywords/usecase"
)

// fakeHTML はHTMLConverterのモック実装です。
type fakeHTML struct {
	ToTextFunc func(html string) (string, error)
}

func (f *fakeHTML) ToText(html string) (string, error) {
	return f.ToTextFunc(html)
}

var longText = strings.Repeat("Microsoft builds cloud computing tools. ", 3)

func TestValidateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload map[string]any
		want    string
		wantErr error
	}{
		{name: "nil payload", payload: nil, wantErr: usecase.ErrMissingField},
		{name: "missing text", payload: map[string]any{"body": longText}, wantErr: usecase.ErrMissingField},
		{name: "null text", payload: map[string]any{"text": nil}, wantErr: usecase.ErrInvalidInput},
		{name: "number text", payload: map[string]any{"text": 12345.0}, wantErr: usecase.ErrInvalidInput},
		{name: "object text", payload: map[string]any{"text": map[string]any{"a": "b"}}, wantErr: usecase.ErrInvalidInput},
		{name: "empty text", payload: map[string]any{"text": ""}, wantErr: usecase.ErrInvalidInput},
		{name: "whitespace padded short text", payload: map[string]any{"text": "   " + strings.Repeat("a", 49) + "\n\n"}, wantErr: usecase.ErrInvalidInput},
		{name: "exactly fifty characters", payload: map[string]any{"text": strings.Repeat("a", 50)}, want: strings.Repeat("a", 50)},
		{name: "multibyte characters counted as runes", payload: map[string]any{"text": strings.Repeat("語", 50)}, want: strings.Repeat("語", 50)},
		{name: "untrimmed text is returned as sent", payload: map[string]any{"text": "  " + longText}, want: "  " + longText},
		{name: "explicit text format", payload: map[string]any{"text": longText, "format": "text"}, want: longText},
		{name: "unknown format", payload: map[string]any{"text": longText, "format": "pdf"}, wantErr: usecase.ErrInvalidInput},
		{name: "html format without converter", payload: map[string]any{"text": longText, "format": "html"}, wantErr: usecase.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := usecase.ValidateText(tt.payload, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateText_HTML(t *testing.T) {
	t.Parallel()

	t.Run("converted text is validated", func(t *testing.T) {
		conv := &fakeHTML{ToTextFunc: func(html string) (string, error) { return longText, nil }}
		got, err := usecase.ValidateText(map[string]any{"text": "<p>x</p>", "format": "html"}, conv)
		require.NoError(t, err)
		assert.Equal(t, longText, got)
	})

	t.Run("markup that renders too little text", func(t *testing.T) {
		conv := &fakeHTML{ToTextFunc: func(html string) (string, error) { return "short", nil }}
		_, err := usecase.ValidateText(map[string]any{"text": "<p>" + longText + "</p>", "format": "html"}, conv)
		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	})

	t.Run("converter error", func(t *testing.T) {
		conv := &fakeHTML{ToTextFunc: func(html string) (string, error) { return "", errors.New("broken markup") }}
		_, err := usecase.ValidateText(map[string]any{"text": longText, "format": "html"}, conv)
		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	})
}
