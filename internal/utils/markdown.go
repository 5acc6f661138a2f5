// internal/utils/markdown.go
package utils

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer allows the tags markdown produces and strips scripts,
// event handlers and similar.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts article markdown into HTML that is safe to embed
// in a page.
func RenderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return htmlSanitizer.Sanitize(buf.String())
}
