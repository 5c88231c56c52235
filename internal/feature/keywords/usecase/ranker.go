package usecase

import (
	"sort"

	"keyword_backend/internal/feature/keywords/domain/entity"
)

const (
	// TopCandidates は頻度順に最初に選ぶ候補数です。
	TopCandidates = 10
	// MaxKeywords はレスポンスに含めるキーワードの最大数です。
	MaxKeywords = 7
	// DefaultMinCount は採用に必要な最小出現回数です。
	DefaultMinCount = 1

	// MessageNoCandidates は候補が1件もなかったときのメッセージです。
	MessageNoCandidates = "No significant keywords found after NLP processing."
	// MessageBelowThreshold は候補はあったが閾値を満たさなかったときのメッセージです。
	MessageBelowThreshold = "Keywords found but did not meet frequency or uniqueness criteria."
)

// keywordCount は候補文字列と出現回数の組です。
type keywordCount struct {
	keyword string
	count   int
}

// Ranker は候補リストを出現回数でランキングします。
type Ranker struct {
	minCount int
}

// NewRanker は指定した最小出現回数でRankerを生成します。
// minCountが1未満の場合はDefaultMinCountを使用します。
func NewRanker(minCount int) *Ranker {
	if minCount < 1 {
		minCount = DefaultMinCount
	}
	return &Ranker{minCount: minCount}
}

// Rank は候補を集計し、出現回数の多い順に最大MaxKeywords件のキーワードを返します。
// 同数の場合は最初に出現した順を保ちます。
func (r *Ranker) Rank(candidates []string) entity.Result {
	if len(candidates) == 0 {
		return entity.Result{Keywords: []string{}, Message: MessageNoCandidates}
	}

	counts := countKeywords(candidates)
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	if len(counts) > TopCandidates {
		counts = counts[:TopCandidates]
	}

	top := make([]keywordCount, 0, len(counts))
	for _, kc := range counts {
		if kc.count >= r.minCount {
			top = append(top, kc)
		}
	}

	// 集計の時点で一意なので、重複除去は並び順の再確認のみ
	sort.SliceStable(top, func(i, j int) bool { return top[i].count > top[j].count })
	if len(top) > MaxKeywords {
		top = top[:MaxKeywords]
	}

	if len(top) == 0 {
		return entity.Result{Keywords: []string{}, Message: MessageBelowThreshold}
	}

	keywords := make([]string, 0, len(top))
	for _, kc := range top {
		keywords = append(keywords, kc.keyword)
	}
	return entity.Result{Keywords: keywords}
}

// countKeywords は初出順を保ったまま出現回数を数えます。
func countKeywords(candidates []string) []keywordCount {
	index := make(map[string]int, len(candidates))
	var counts []keywordCount
	for _, c := range candidates {
		if i, ok := index[c]; ok {
			counts[i].count++
			continue
		}
		index[c] = len(counts)
		counts = append(counts, keywordCount{keyword: c, count: 1})
	}
	return counts
}
