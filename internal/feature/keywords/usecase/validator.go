package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinTextLength は前後の空白を除いたテキストの最小文字数（rune数）です。
	MinTextLength = 50

	// FormatText はプレーンテキスト入力を表します。
	FormatText = "text"
	// FormatHTML はHTMLマークアップ入力を表します。
	FormatHTML = "html"
)

// HTMLConverter はHTMLを表示テキストに変換するインターフェースです。
type HTMLConverter interface {
	// ToText はHTMLマークアップから表示されるテキストを取り出します。
	ToText(html string) (string, error)
}

// ValidateText はパース済みのリクエストボディから解析対象のテキストを取り出します。
// "text" キーがなければ ErrMissingField、文字列でない・短すぎる場合は ErrInvalidInput を返します。
// htmlがnilの場合、"format": "html" は ErrInvalidInput になります。
func ValidateText(payload map[string]any, html HTMLConverter) (string, error) {
	if payload == nil {
		return "", ErrMissingField
	}
	raw, ok := payload["text"]
	if !ok {
		return "", ErrMissingField
	}
	text, ok := raw.(string)
	if !ok || text == "" {
		return "", ErrInvalidInput
	}

	switch format := payload["format"]; format {
	case nil, FormatText:
	case FormatHTML:
		if html == nil {
			return "", fmt.Errorf("%w: html input is not supported", ErrInvalidInput)
		}
		converted, err := html.ToText(text)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		text = converted
	default:
		return "", fmt.Errorf("%w: unknown format %v", ErrInvalidInput, format)
	}

	if !longEnough(text) {
		return "", ErrInvalidInput
	}
	return text, nil
}

func longEnough(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinTextLength
}
