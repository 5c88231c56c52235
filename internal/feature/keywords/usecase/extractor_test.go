package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
)

// words は全トークンを内容語として扱う名詞句を生成するヘルパー関数です。
func words(text string, tokens ...string) entity.NounPhrase {
	np := entity.NounPhrase{Text: text}
	for _, tk := range tokens {
		np.Tokens = append(np.Tokens, entity.Token{Text: tk})
	}
	return np
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Cloud Computing", "cloud computing"},
		{"  (Microsoft).", "microsoft"},
		{"\"quoted\"!?", "quoted"},
		{"[e.g.]", "e.g"},
		{"-- dash --", "dash"},
		{"{braces}", "braces"},
		{"in-house", "in-house"},
		{"\tTab", "\ttab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestExtractCandidates_NounPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phrase entity.NounPhrase
		want   []string
	}{
		{name: "kept and normalized", phrase: words("Cloud Computing,", "Cloud", "Computing", ","), want: []string{"cloud computing"}},
		{name: "three characters is too short", phrase: words("API", "API")},
		{name: "four characters is long enough", phrase: words("Java", "Java"), want: []string{"java"}},
		{name: "custom stop word", phrase: words("Website", "Website")},
		{name: "custom stop word after trimming article punctuation", phrase: words("(content)", "(", "content", ")")},
		{name: "digits only", phrase: words("2024", "2024")},
		{
			name: "leading determiner before a stop word",
			phrase: entity.NounPhrase{Text: "the page", Tokens: []entity.Token{
				{Text: "the", IsStop: true}, {Text: "page"},
			}},
		},
		{
			name: "leading determiner is kept in the candidate",
			phrase: entity.NounPhrase{Text: "The cloud", Tokens: []entity.Token{
				{Text: "The", IsStop: true}, {Text: "cloud"},
			}},
			want: []string{"the cloud"},
		},
		{
			name: "only function words",
			phrase: entity.NounPhrase{Text: "all of them", Tokens: []entity.Token{
				{Text: "all", IsStop: true}, {Text: "of", IsStop: true}, {Text: "them", IsStop: true},
			}},
		},
		{
			name: "stop words punctuation and whitespace only",
			phrase: entity.NounPhrase{Text: "these ... ones", Tokens: []entity.Token{
				{Text: "these", IsStop: true}, {Text: "...", IsPunct: true}, {Text: " ", IsSpace: true}, {Text: "ones", IsStop: true},
			}},
		},
		{name: "no tokens reported", phrase: entity.NounPhrase{Text: "orphan phrase"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := usecase.ExtractCandidates(&entity.Analysis{NounPhrases: []entity.NounPhrase{tt.phrase}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCandidates_StopWordPhrase(t *testing.T) {
	t.Parallel()

	// "page" を主要語とする名詞句は、構成トークンが機能語でなくても除外される
	a := &entity.Analysis{NounPhrases: []entity.NounPhrase{
		{Text: "Page", Tokens: []entity.Token{{Text: "Page"}}},
		{Text: "the page", Tokens: []entity.Token{{Text: "the", IsStop: true}, {Text: "page"}}},
		{Text: "this  Page.", Tokens: []entity.Token{{Text: "this", IsStop: true}, {Text: " ", IsSpace: true}, {Text: "Page"}, {Text: ".", IsPunct: true}}},
	}}
	assert.Empty(t, usecase.ExtractCandidates(a))
}

func TestExtractCandidates_Entities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ent  entity.Entity
		want []string
	}{
		{name: "organization", ent: entity.Entity{Text: "Microsoft", Label: "ORG"}, want: []string{"microsoft"}},
		{name: "facility", ent: entity.Entity{Text: "Golden Gate Bridge", Label: "FACILITY"}, want: []string{"golden gate bridge"}},
		{name: "nationality group", ent: entity.Entity{Text: "Americans", Label: "NORP"}, want: []string{"americans"}},
		{name: "three characters is long enough", ent: entity.Entity{Text: "IBM", Label: "ORG"}, want: []string{"ibm"}},
		{name: "two characters is too short", ent: entity.Entity{Text: "UK", Label: "GPE"}},
		{name: "irrelevant label", ent: entity.Entity{Text: "Tuesday", Label: "DATE"}},
		{name: "law is not relevant", ent: entity.Entity{Text: "First Amendment", Label: "LAW"}},
		{name: "FAC short label is not relevant", ent: entity.Entity{Text: "Golden Gate Bridge", Label: "FAC"}},
		{name: "custom stop word", ent: entity.Entity{Text: "News", Label: "ORG"}},
		{name: "digits only", ent: entity.Entity{Text: "1984", Label: "WORK_OF_ART"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := usecase.ExtractCandidates(&entity.Analysis{Entities: []entity.Entity{tt.ent}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCandidates_BothSignalsCount(t *testing.T) {
	t.Parallel()

	a := &entity.Analysis{
		NounPhrases: []entity.NounPhrase{words("Microsoft", "Microsoft")},
		Entities:    []entity.Entity{{Text: "Microsoft", Label: "ORG"}},
	}
	assert.Equal(t, []string{"microsoft", "microsoft"}, usecase.ExtractCandidates(a))
}

func TestExtractCandidates_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, usecase.ExtractCandidates(nil))
	assert.Empty(t, usecase.ExtractCandidates(&entity.Analysis{}))
}
