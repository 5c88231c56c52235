// Package remote はHTTPで公開されたNLPサービスを呼び出すパイプラインを提供します。
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"keyword_backend/internal/feature/keywords/domain/entity"
	"keyword_backend/internal/feature/keywords/usecase"
)

// Name はヘルスチェック等で表示するパイプライン名です。
const Name = "remote"

const defaultTimeout = 10 * time.Second

// Config はリモートNLPサービスの設定です。
type Config struct {
	URL     string        // 解析エンドポイントのURL（例: "http://nlp:9000/analyze"）
	Timeout time.Duration // HTTPリクエストのタイムアウト
}

// LoadConfig は環境変数からリモートNLPサービスの設定を読み込みます。
// NLP_REMOTE_TIMEOUT が未設定または不正な場合は10秒を使用します。
func LoadConfig() Config {
	timeout := defaultTimeout
	if v := os.Getenv("NLP_REMOTE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			slog.Warn("invalid NLP_REMOTE_TIMEOUT, using default", "value", v, "default", defaultTimeout)
		}
	}
	return Config{
		URL:     os.Getenv("NLP_REMOTE_URL"),
		Timeout: timeout,
	}
}

// RemotePipeline は {"text": ...} をPOSTし、解析結果のJSONを受け取ります。
type RemotePipeline struct {
	url    string
	client *http.Client
}

// RemotePipelineがPipelineを実装していることをコンパイル時に検証します。
var _ usecase.Pipeline = (*RemotePipeline)(nil)

// NewRemotePipeline はRemotePipelineの新しいインスタンスを生成します。
func NewRemotePipeline(cfg Config, client *http.Client) (*RemotePipeline, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("NLP_REMOTE_URL is required for the remote pipeline")
	}
	return &RemotePipeline{url: cfg.URL, client: client}, nil
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze はリモートサービスにテキストを送り、名詞句と固有表現を受け取ります。
func (p *RemotePipeline) Analyze(ctx context.Context, text string) (*entity.Analysis, error) {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote NLP request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("remote NLP service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out entity.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode remote NLP response: %w", err)
	}
	return &out, nil
}
