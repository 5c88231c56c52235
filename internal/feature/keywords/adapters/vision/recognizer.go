// Package vision はGoogle Cloud Vision APIを使用した文字認識クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"keyword_backend/internal/feature/keywords/usecase"
)

// VisionTextRecognizer はGoogle Cloud Vision APIで画像内の文字を読み取ります。
type VisionTextRecognizer struct {
	client *gvision.ImageAnnotatorClient
}

// VisionTextRecognizerがTextRecognizerを実装していることをコンパイル時に検証します。
var _ usecase.TextRecognizer = (*VisionTextRecognizer)(nil)

// NewVisionTextRecognizer はADCを使用してVisionTextRecognizerの新しいインスタンスを生成します。
func NewVisionTextRecognizer(ctx context.Context) (*VisionTextRecognizer, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextRecognizer{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionTextRecognizer) Close() error {
	return v.client.Close()
}

// RecognizeText は画像バイト列に含まれる文字列をTEXT_DETECTIONで取得します。
func (v *VisionTextRecognizer) RecognizeText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}
	return textFromResponse(resp)
}

// textFromResponse はレスポンスから全文テキストを取り出します。
// FullTextAnnotationがない場合は先頭のTextAnnotation（画像全体）を使用します。
func textFromResponse(resp *visionpb.BatchAnnotateImagesResponse) (string, error) {
	if resp == nil || len(resp.Responses) == 0 {
		return "", nil
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("vision API error: %s", r.Error.Message)
	}
	if r.FullTextAnnotation != nil && r.FullTextAnnotation.Text != "" {
		return r.FullTextAnnotation.Text, nil
	}
	if len(r.TextAnnotations) > 0 {
		return r.TextAnnotations[0].Description, nil
	}
	return "", nil
}
