package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs",
			html: "<html><body><p>Microsoft ships</p><p>cloud   computing</p></body></html>",
			want: "Microsoft ships cloud computing",
		},
		{
			name: "scripts and styles are dropped",
			html: `<html><head><title>Home</title><style>p{color:red}</style></head>
<body><script>var page = 1;</script><div>Azure<br>regions</div><noscript>enable js</noscript></body></html>`,
			want: "Azure regions",
		},
		{
			name: "fragment without body",
			html: "<span>plain</span> text",
			want: "plain text",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConverter().ToText(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
