package prose

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"keyword_backend/internal/feature/keywords/adapters/lexicon"
	"keyword_backend/internal/feature/keywords/domain/entity"
)

// Penn Treebankタグによる名詞句の構成要素。
var (
	determinerTags = tagSet("DT", "PDT", "PRP$", "WDT", "WP$")
	modifierTags   = tagSet("JJ", "JJR", "JJS", "CD", "VBN", "VBG", "HYPH")
	nounTags       = tagSet("NN", "NNS", "NNP", "NNPS")
	pronounTags    = tagSet("PRP", "WP")
)

// fillerWords はタガーが名詞と判定しても句の主要部にしない略語です。
var fillerWords = tagSet("etc", "etc.", "e.g", "e.g.", "i.e", "i.e.", "vs", "vs.", "viz", "viz.", "cf", "cf.")

func tagSet(tags ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func hasTag(set map[string]struct{}, tag string) bool {
	_, ok := set[tag]
	return ok
}

// chunkNounPhrases は品詞タグ付きトークン列から名詞句を組み立てます。
// 句は「限定詞* (修飾語|名詞)* 名詞」の最長一致で、末尾は必ず名詞です。
// 名詞を含まない人称代名詞は単独の句になります。
// 機能語や "etc" のような略語は名詞タグが付いていても主要部として扱いません。
func chunkNounPhrases(tokens []prose.Token) []entity.NounPhrase {
	var out []entity.NounPhrase
	for i := 0; i < len(tokens); {
		j := i
		for j < len(tokens) && hasTag(determinerTags, tokens[j].Tag) {
			j++
		}
		lastNoun := -1
		for j < len(tokens) && (hasTag(modifierTags, tokens[j].Tag) || hasTag(nounTags, tokens[j].Tag)) {
			if isHeadNoun(tokens[j]) {
				lastNoun = j
			}
			j++
		}

		switch {
		case lastNoun >= 0:
			out = append(out, newNounPhrase(tokens[i:lastNoun+1]))
			i = lastNoun + 1
		case hasTag(pronounTags, tokens[i].Tag):
			out = append(out, newNounPhrase(tokens[i:i+1]))
			i++
		default:
			i++
		}
	}
	return out
}

// isHeadNoun は名詞句の末尾（主要部）になれるトークンかどうかを返します。
func isHeadNoun(t prose.Token) bool {
	if !hasTag(nounTags, t.Tag) {
		return false
	}
	lower := strings.ToLower(t.Text)
	return !hasTag(fillerWords, lower) && !lexicon.IsStopWord(lower)
}

func newNounPhrase(span []prose.Token) entity.NounPhrase {
	words := make([]string, 0, len(span))
	toks := make([]entity.Token, 0, len(span))
	for _, t := range span {
		words = append(words, t.Text)
		tok := lexicon.NewToken(t.Text)
		// 記号タグは辞書判定より優先
		if isPunctTag(t.Tag) {
			tok.IsPunct = true
		}
		toks = append(toks, tok)
	}
	return entity.NounPhrase{Text: strings.Join(words, " "), Tokens: toks}
}

func isPunctTag(tag string) bool {
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "#", "$", "HYPH", "SYM", "-LRB-", "-RRB-":
		return true
	}
	return false
}
