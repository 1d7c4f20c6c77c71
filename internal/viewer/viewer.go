// Package viewer renders generated documents for display and download.
package viewer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/JaimeStill/charter/internal/policies"
)

// ContentType is the media type of an exported document.
const ContentType = "text/markdown; charset=utf-8"

// Raw HTML in model output is omitted and unsafe link schemes are dropped,
// since goldmark's unsafe renderer option is not enabled.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Render converts markdown to HTML safe to embed in a page.
func Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Filename names an exported document, e.g. privacy-policy-2026-10-18.md.
func Filename(kind policies.Kind, date string) string {
	name := string(kind)
	if name == "" {
		name = "document"
	}
	if date != "" {
		name += "-" + date
	}
	return name + ".md"
}
