// Package markdown renders post content to sanitized HTML for detail views.
// The stored content is never modified; rendering happens at read time.
package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extension.Strikethrough),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to HTML and strips everything the UGC policy
// disallows. On a conversion error the raw text is sanitized and returned,
// so callers always get displayable output.
func (r *Renderer) Render(content string) string {
	if content == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return r.policy.Sanitize(content)
	}

	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}
