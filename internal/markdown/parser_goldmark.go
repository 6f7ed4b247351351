package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. It is an opt-in alternative to the default line engine for authors
// who want full CommonMark plus GFM extensions. The parser is stateless so a
// single instance can be reused across documents without locking.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

// NewGoldmarkParser constructs a goldmark-backed parser with GFM extensions
// and raw HTML passthrough, matching the line engine's permissive stance
// towards author-supplied markup.
func NewGoldmarkParser() *GoldmarkParser {
	return &GoldmarkParser{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Parse satisfies interfaces.MarkdownParser by rendering Markdown into HTML.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}
