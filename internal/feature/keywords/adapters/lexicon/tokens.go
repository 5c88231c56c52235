package lexicon

import (
	"strings"
	"unicode"

	"keyword_backend/internal/feature/keywords/domain/entity"
)

// IsPunct は文字列が句読点または記号のみで構成されているかを返します。
func IsPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// IsSpace は文字列が空白文字のみで構成されているかを返します。
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// NewToken はテキストに機能語・記号・空白のフラグを付与したトークンを生成します。
func NewToken(text string) entity.Token {
	return entity.Token{
		Text:    text,
		IsStop:  IsStopWord(text),
		IsPunct: IsPunct(text),
		IsSpace: IsSpace(text),
	}
}

// Tokenize は句を空白で区切り、語の前後に付いた句読点を独立したトークンとして切り出します。
// 語の内部の記号（"e-mail" のハイフンなど）は分割しません。
func Tokenize(phrase string) []entity.Token {
	var out []entity.Token
	for _, field := range strings.Fields(phrase) {
		runes := []rune(field)
		start, end := 0, len(runes)
		for start < end && isEdgePunct(runes[start]) {
			start++
		}
		for end > start && isEdgePunct(runes[end-1]) {
			end--
		}

		for _, r := range runes[:start] {
			out = append(out, NewToken(string(r)))
		}
		if start < end {
			out = append(out, NewToken(string(runes[start:end])))
		}
		for _, r := range runes[end:] {
			out = append(out, NewToken(string(r)))
		}
	}
	return out
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
