// Package dto はkeywordsフィーチャーのリクエスト定義を提供します。
package dto

// AnalyzeRequest は POST /analyze のリクエストボディです。
// "text" の欠落と型違いを区別するため、デコードは map[string]any で行います。
type AnalyzeRequest map[string]any

// Format は "format" フィールドの値を返します（未指定の場合は空文字）。
func (r AnalyzeRequest) Format() string {
	f, _ := r["format"].(string)
	return f
}
