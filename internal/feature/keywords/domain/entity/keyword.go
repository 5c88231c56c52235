package entity

// Result はキーワード抽出の結果を表します。
// Keywordsが空の場合、Messageに理由が入ります。
type Result struct {
	Keywords []string // 出現回数の多い順に並んだキーワード（最大7件）
	Message  string   // 結果が空のときの説明メッセージ
}
