// Package helptext converts field descriptions written in Markdown into
// sanitized HTML fragments. Descriptions often come from external documents
// (API schemas, YAML definitions), so the output is filtered through an
// allowlist sanitizer before it is trusted as markup.
package helptext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-htmlform/pkg/template"
)

// Raw HTML passes through goldmark untouched; bluemonday is the single
// filter deciding what survives.
var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
	)
	policy = bluemonday.UGCPolicy()
)

// HTML renders the Markdown source and sanitizes the result. The returned
// fragment is safe to place inside a description slot without further
// escaping.
func HTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("helptext: convert markdown: %w", err)
	}
	return template.HTML(policy.Sanitize(buf.String())), nil
}

// Inline behaves like HTML but strips the wrapping paragraph that single-line
// descriptions otherwise pick up, so the fragment sits inside <small> or
// <span> containers without introducing block structure.
func Inline(source string) (template.HTML, error) {
	rendered, err := HTML(source)
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(string(rendered))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out), nil
}
