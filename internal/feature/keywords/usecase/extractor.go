package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"keyword_backend/internal/feature/keywords/domain/entity"
)

const (
	// trimCutset は候補文字列の前後から取り除く文字の集合です。
	trimCutset = " .,;:!?-()[]{}'\""

	minPhraseLength = 4 // 名詞句は3文字より長いこと
	minEntityLength = 3 // 固有表現は2文字より長いこと
)

// Normalize は候補文字列を小文字化し、前後の句読点・空白を取り除きます。
func Normalize(s string) string {
	return strings.Trim(strings.ToLower(s), trimCutset)
}

// ExtractCandidates はパイプラインの出力からキーワード候補を取り出します。
// 名詞句の候補、固有表現の候補の順に並び、重複はそのまま残します。
func ExtractCandidates(a *entity.Analysis) []string {
	if a == nil {
		return nil
	}
	var out []string

	for _, np := range a.NounPhrases {
		clean := Normalize(np.Text)
		if utf8.RuneCountInString(clean) < minPhraseLength || IsCustomStopWord(clean) || isDigits(clean) {
			continue
		}
		if !hasContentToken(np.Tokens) || IsCustomStopWord(headForm(np.Tokens)) {
			continue
		}
		out = append(out, clean)
	}

	for _, ent := range a.Entities {
		if _, ok := relevantEntityLabels[ent.Label]; !ok {
			continue
		}
		clean := Normalize(ent.Text)
		if utf8.RuneCountInString(clean) < minEntityLength || IsCustomStopWord(clean) || isDigits(clean) {
			continue
		}
		out = append(out, clean)
	}

	return out
}

// hasContentToken は機能語・記号・空白以外のトークンが1つでも含まれるかを返します。
func hasContentToken(tokens []entity.Token) bool {
	for _, t := range tokens {
		if !t.IsStop && !t.IsPunct && !t.IsSpace {
			return true
		}
	}
	return false
}

// headForm は先頭の機能語・記号・空白トークンを除いた名詞句を正規化して返します。
// "the page" のような名詞句をストップワード "page" と同様に扱うために使います。
func headForm(tokens []entity.Token) string {
	i := 0
	for i < len(tokens) && (tokens[i].IsStop || tokens[i].IsPunct || tokens[i].IsSpace) {
		i++
	}
	parts := make([]string, 0, len(tokens)-i)
	for _, t := range tokens[i:] {
		parts = append(parts, t.Text)
	}
	return Normalize(strings.Join(parts, " "))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
