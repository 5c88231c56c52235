package usecase

// customStopWords はサイトのボイラープレートやHTMLエンティティ由来の一般語です。
// 正規化後の文字列と完全一致で比較します。
var customStopWords = newSet(
	"page", "site", "website", "article", "content", "information", "click", "view", "menu",
	"home", "search", "contact", "news", "post", "blog", "comment", "read", "more", "share",
	"like", "follow", "also", "however", "therefore", "example", "e.g.", "i.e.", "etc", "fig",
	"image", "photo", "video", "copyright", "rights", "reserved", "terms", "privacy", "policy",
	"subscribe", "login", "logout", "register", "account", "learn", "help", "faq", "support",
	"services", "products", "company", "about", "us", "welcome", "thank", "thanks", "nbsp",
	"amp", "quot", "apos", "lt", "gt",
)

// relevantEntityLabels はキーワード候補として採用する固有表現ラベルです。
var relevantEntityLabels = newSet(
	"ORG", "PRODUCT", "EVENT", "WORK_OF_ART", "LOC", "PERSON", "NORP", "GPE", "FACILITY",
)

func newSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// IsCustomStopWord は正規化済みの文字列がカスタムストップワードかどうかを返します。
func IsCustomStopWord(s string) bool {
	_, ok := customStopWords[s]
	return ok
}
