// Package entity はkeywordsフィーチャーのドメインモデルを定義します。
package entity

// Token はNLPパイプラインが名詞句を構成するトークンに付与する属性です。
type Token struct {
	Text    string `json:"text"`
	IsStop  bool   `json:"is_stop"`  // パイプライン側のストップワード判定
	IsPunct bool   `json:"is_punct"` // 句読点・記号のみのトークン
	IsSpace bool   `json:"is_space"` // 空白のみのトークン
}

// NounPhrase はパイプラインが検出した名詞句（noun chunk）です。
type NounPhrase struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Entity はパイプラインが検出した固有表現です。
// LabelはOntoNotesのタグ名（ORG, PERSON, GPE など）を使用します。
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Analysis は1件のテキストに対するNLPパイプラインの出力です。
type Analysis struct {
	NounPhrases []NounPhrase `json:"noun_phrases"`
	Entities    []Entity     `json:"entities"`
}
