package vision

import (
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	status "google.golang.org/genproto/googleapis/rpc/status"
)

func TestTextFromResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *visionpb.BatchAnnotateImagesResponse
		want    string
		wantErr bool
	}{
		{
			name: "nil response",
			resp: nil,
			want: "",
		},
		{
			name: "full text annotation",
			resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{{
				FullTextAnnotation: &visionpb.TextAnnotation{Text: "Microsoft cloud computing"},
				TextAnnotations:    []*visionpb.EntityAnnotation{{Description: "ignored"}},
			}}},
			want: "Microsoft cloud computing",
		},
		{
			name: "falls back to text annotations",
			resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{{
				TextAnnotations: []*visionpb.EntityAnnotation{{Description: "whole image"}, {Description: "whole"}},
			}}},
			want: "whole image",
		},
		{
			name: "api error",
			resp: &visionpb.BatchAnnotateImagesResponse{Responses: []*visionpb.AnnotateImageResponse{{
				Error: &status.Status{Code: 3, Message: "bad image data"},
			}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := textFromResponse(tt.resp)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
