package markdown

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Inline span patterns, applied in a fixed order. Images must run before
// links because a link pattern is a strict substring of an image pattern;
// scanning links first would match the [alt](url) portion and drop the
// leading bang. Bold runs before italic so ** is not consumed as two
// italic delimiters.
var (
	imagePattern          = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codePattern           = regexp.MustCompile("`([^`]+)`")
	markPattern           = regexp.MustCompile(`==(.+?)==`)
	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern     = regexp.MustCompile(`\*([^*]+)\*`)

	// Underscore emphasis must not touch a letter on either side, otherwise
	// identifiers like snake_case_name grow spurious <em> tags. The stdlib
	// engine has no lookarounds, so this one rule goes through regexp2.
	italicUnderscorePattern = regexp2.MustCompile(`(?<![a-zA-Z])_([^_]+)_(?![a-zA-Z])`, regexp2.None)
)

// RenderInline rewrites the inline Markdown spans of a single line into HTML
// fragments: images, links, inline code, ==highlight==, bold, and italic.
// The input must not contain newlines. RenderInline is a pure function and
// total over any input; lines without span syntax come back unchanged.
//
// Surrounding prose is not HTML-escaped: raw angle brackets and ampersands
// typed by the author pass through. Callers that need safety must pre-escape.
func RenderInline(text string) string {
	text = imagePattern.ReplaceAllString(text, `<img src="$2" alt="$1">`)
	text = linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = codePattern.ReplaceAllString(text, `<code>$1</code>`)
	text = markPattern.ReplaceAllString(text, `<mark>$1</mark>`)
	text = boldStarPattern.ReplaceAllString(text, `<strong>$1</strong>`)
	text = boldUnderscorePattern.ReplaceAllString(text, `<strong>$1</strong>`)
	text = italicStarPattern.ReplaceAllString(text, `<em>$1</em>`)
	if replaced, err := italicUnderscorePattern.Replace(text, `<em>$1</em>`, -1, -1); err == nil {
		text = replaced
	}
	return text
}
