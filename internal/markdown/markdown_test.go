package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "emphasis",
			input:    "hello *world*",
			expected: "<p>hello <em>world</em></p>",
		},
		{
			name:     "strikethrough extension",
			input:    "~~gone~~",
			expected: "<p><del>gone</del></p>",
		},
		{
			name:     "script is stripped",
			input:    "hi <script>alert(1)</script>",
			expected: "<p>hi </p>",
		},
		{
			name:     "event handlers are stripped",
			input:    `<a href="http://example.com" onclick="steal()">link</a>`,
			expected: `<p><a href="http://example.com" rel="nofollow">link</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Render(tt.input))
		})
	}
}
