// Package gemini はGoogle Gemini APIを使用したNLPパイプラインを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"keyword_backend/internal/feature/keywords/adapters/lexicon"
	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
)

const (
	// Name はヘルスチェック等で表示するパイプライン名です。
	Name = "gemini"
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

const promptTemplate = `You are an English NLP pipeline. Extract every noun chunk and every named entity from the text below.
Return only a JSON object of the form:
{"noun_phrases": ["<noun chunk as it appears in the text>", ...],
 "entities": [{"text": "<entity as it appears in the text>", "label": "<OntoNotes label>"}, ...]}
Use the OntoNotes labels PERSON, NORP, FACILITY, ORG, GPE, LOC, PRODUCT, EVENT, WORK_OF_ART, LAW, LANGUAGE, DATE, TIME, PERCENT, MONEY, QUANTITY, ORDINAL, CARDINAL.
List a chunk or entity once per occurrence, in text order.

Text:
%s`

// Config はGeminiパイプラインの設定です。
type Config struct {
	Model string
}

// LoadConfig は環境変数からGeminiパイプラインの設定を読み込みます。
func LoadConfig() Config {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return Config{Model: model}
}

// GeminiPipeline はGeminiに名詞句と固有表現の抽出を依頼します。
// トークンのフラグは応答を受け取った後にローカルの辞書で付与します。
type GeminiPipeline struct {
	client *genai.Client
	model  string
}

// GeminiPipelineがPipelineを実装していることをコンパイル時に検証します。
var _ usecase.Pipeline = (*GeminiPipeline)(nil)

// NewGeminiPipeline はADCを使用してGeminiPipelineの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION
// またはGEMINI_API_KEYが必要です。
func NewGeminiPipeline(ctx context.Context, cfg Config) (*GeminiPipeline, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &GeminiPipeline{client: client, model: cfg.Model}, nil
}

// Analyze はテキストをGeminiに送り、応答のJSONを解析結果に変換します。
func (g *GeminiPipeline) Analyze(ctx context.Context, text string) (*entity.Analysis, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(promptTemplate, text)), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}
	return parseResponse(resp.Text())
}

// geminiResponse はGeminiに要求するJSONの形式です。
type geminiResponse struct {
	NounPhrases []string        `json:"noun_phrases"`
	Entities    []entity.Entity `json:"entities"`
}

// parseResponse はモデルの応答テキストを解析結果に変換します。
// コードフェンスで囲まれた応答も受け付けます。
func parseResponse(raw string) (*entity.Analysis, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	var gr geminiResponse
	if err := json.Unmarshal([]byte(body), &gr); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	out := &entity.Analysis{
		NounPhrases: make([]entity.NounPhrase, 0, len(gr.NounPhrases)),
		Entities:    make([]entity.Entity, 0, len(gr.Entities)),
	}
	for _, np := range gr.NounPhrases {
		out.NounPhrases = append(out.NounPhrases, entity.NounPhrase{Text: np, Tokens: lexicon.Tokenize(np)})
	}
	for _, e := range gr.Entities {
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Label == "FAC" {
			e.Label = "FACILITY"
		}
		out.Entities = append(out.Entities, e)
	}
	return out, nil
}
