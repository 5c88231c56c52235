// Package prose はjdkato/proseを使用したプロセス内NLPパイプラインを提供します。
package prose

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"

	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
)

// Name はヘルスチェック等で表示するパイプライン名です。
const Name = "prose"

// labelAliases はproseの固有表現ラベルをOntoNotesのタグ名に揃えます。
var labelAliases = map[string]string{
	"FAC": "FACILITY",
}

// modelName はproseに同梱された英語モデルの名前です。
const modelName = "en"

// ProsePipeline はトークン化・品詞タグ付け・固有表現抽出をプロセス内で行います。
// モデルは生成時に一度だけ読み込み、以降は読み取り専用で複数のリクエストから共有します。
type ProsePipeline struct {
	model *prose.Model
}

// ProsePipelineがPipelineを実装していることをコンパイル時に検証します。
var _ usecase.Pipeline = (*ProsePipeline)(nil)

// NewProsePipeline は同梱モデル（品詞タガーとNER分類器）を読み込んでProsePipelineを生成します。
func NewProsePipeline() *ProsePipeline {
	return &ProsePipeline{model: prose.ModelFromData(modelName)}
}

// Analyze はテキストを解析し、名詞句と固有表現を返します。
func (p *ProsePipeline) Analyze(ctx context.Context, text string) (*entity.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(p.model),
	)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	ents := doc.Entities()
	out := &entity.Analysis{
		NounPhrases: chunkNounPhrases(doc.Tokens()),
		Entities:    make([]entity.Entity, 0, len(ents)),
	}
	for _, e := range ents {
		label := e.Label
		if alias, ok := labelAliases[label]; ok {
			label = alias
		}
		out.Entities = append(out.Entities, entity.Entity{Text: e.Text, Label: label})
	}
	return out, nil
}
