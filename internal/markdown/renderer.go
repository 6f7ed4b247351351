package markdown

import (
	"regexp"
	"strings"
)

const fenceMarker = "```"

var orderedItemPattern = regexp.MustCompile(`^(\d+)\. (.+)$`)

// headerPrefixes are matched longest first so "#### text" renders as <h4>
// instead of <h1> applied to the remaining hashes.
var headerPrefixes = []struct {
	prefix string
	tag    string
}{
	{"#### ", "h4"},
	{"### ", "h3"},
	{"## ", "h2"},
	{"# ", "h1"},
}

// blockMode tracks which multi-line block is currently open. Bullet list,
// numbered list, and blockquote are mutually exclusive: opening one closes
// whichever was active before it.
type blockMode int

const (
	modeNormal blockMode = iota
	modeBulletList
	modeNumberedList
	modeBlockquote
)

// renderState is the cursor threaded through the line fold. A code fence is
// held separately from blockMode because a fence only suspends list and
// blockquote tracking; it does not close them. A list opened before a fence
// resumes once the fence ends.
type renderState struct {
	inFence bool
	block   blockMode
	quote   []string
}

// RenderBody converts an ordered sequence of Markdown lines into the joined
// HTML body. It is total over any input, including the empty sequence, and
// never fails: lines no rule recognises fall through to a paragraph. Empty
// input lines are preserved as empty output fragments.
func RenderBody(lines []string) string {
	state := renderState{}
	fragments := make([]string, 0, len(lines))
	for _, line := range lines {
		fragments = state.step(fragments, line)
	}
	fragments = state.finish(fragments)
	return strings.Join(fragments, "\n")
}

// step evaluates a single line against the block rules in priority order and
// returns the fragment sequence with this line's output appended.
func (s *renderState) step(out []string, line string) []string {
	if strings.HasPrefix(line, fenceMarker) {
		s.inFence = !s.inFence
		if s.inFence {
			return append(out, "<pre><code>")
		}
		return append(out, "</code></pre>")
	}

	if s.inFence {
		return append(out, EscapeHTML(line))
	}

	// A list closes the moment a line stops matching its item shape; the
	// line is then evaluated against the remaining rules as usual.
	if s.block == modeBulletList && !isBulletItem(line) {
		out = append(out, "</ul>")
		s.block = modeNormal
	}
	if s.block == modeNumberedList && !orderedItemPattern.MatchString(line) {
		out = append(out, "</ol>")
		s.block = modeNormal
	}

	// Blockquote lines accumulate without emitting; the whole quote flushes
	// as one element when a non-quoted line arrives.
	if strings.HasPrefix(line, "> ") {
		if s.block != modeBlockquote {
			s.block = modeBlockquote
			s.quote = nil
		}
		s.quote = append(s.quote, RenderInline(line[2:]))
		return out
	}
	if s.block == modeBlockquote {
		out = append(out, flushQuote(s.quote))
		s.block = modeNormal
		s.quote = nil
	}

	for _, h := range headerPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			body := RenderInline(line[len(h.prefix):])
			return append(out, "<"+h.tag+">"+body+"</"+h.tag+">")
		}
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return append(out, "<hr>")
	}

	if isBulletItem(line) {
		if s.block != modeBulletList {
			out = append(out, "<ul>")
			s.block = modeBulletList
		}
		return append(out, "<li>"+RenderInline(line[2:])+"</li>")
	}

	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		if s.block != modeNumberedList {
			out = append(out, "<ol>")
			s.block = modeNumberedList
		}
		// The author's number is discarded; rendering restarts at 1.
		return append(out, "<li>"+RenderInline(m[2])+"</li>")
	}

	if trimmed == "" {
		return append(out, "")
	}

	return append(out, "<p>"+RenderInline(line)+"</p>")
}

// finish closes whatever is still open at end of document. An unterminated
// code fence is auto-closed so the body is always well formed; its content
// up to end of input is preserved as escaped code.
func (s *renderState) finish(out []string) []string {
	if s.inFence {
		out = append(out, "</code></pre>")
		s.inFence = false
	}
	switch s.block {
	case modeBulletList:
		out = append(out, "</ul>")
	case modeNumberedList:
		out = append(out, "</ol>")
	case modeBlockquote:
		out = append(out, flushQuote(s.quote))
	}
	s.block = modeNormal
	s.quote = nil
	return out
}

func flushQuote(fragments []string) string {
	return "<blockquote>" + strings.Join(fragments, " ") + "</blockquote>"
}

func isBulletItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

// LineParser adapts the line engine to interfaces.MarkdownParser. The parser
// carries no state, so one instance can serve every document in a build.
type LineParser struct{}

// NewLineParser constructs the default blog Markdown parser.
func NewLineParser() *LineParser {
	return &LineParser{}
}

// Parse satisfies interfaces.MarkdownParser. The error is always nil: the
// line engine degrades gracefully instead of rejecting malformed input.
func (p *LineParser) Parse(markdown []byte) ([]byte, error) {
	lines := strings.Split(string(markdown), "\n")
	return []byte(RenderBody(lines)), nil
}
