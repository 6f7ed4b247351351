package markdown

import (
	"strings"
	"testing"
)

func TestRenderBodyEmptyInput(t *testing.T) {
	if got := RenderBody(nil); got != "" {
		t.Fatalf("RenderBody(nil) = %q, want empty string", got)
	}
}

func TestRenderBodyParagraphDefault(t *testing.T) {
	got := RenderBody([]string{"hello **world**"})
	want := "<p>hello <strong>world</strong></p>"
	if got != want {
		t.Fatalf("RenderBody = %q, want %q", got, want)
	}
}

func TestRenderBodyHeaders(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"# One", "<h1>One</h1>"},
		{"## Two", "<h2>Two</h2>"},
		{"### Three", "<h3>Three</h3>"},
		{"#### Four", "<h4>Four</h4>"},
	}
	for _, tc := range cases {
		if got := RenderBody([]string{tc.line}); got != tc.want {
			t.Fatalf("RenderBody(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestRenderBodyHeaderLongestPrefix(t *testing.T) {
	got := RenderBody([]string{"#### T"})
	if got != "<h4>T</h4>" {
		t.Fatalf("four hashes mis-parsed: %q", got)
	}
}

func TestRenderBodyHorizontalRule(t *testing.T) {
	for _, line := range []string{"---", "***", "___", "  ---  "} {
		if got := RenderBody([]string{line}); got != "<hr>" {
			t.Fatalf("RenderBody(%q) = %q, want <hr>", line, got)
		}
	}
}

func TestRenderBodyBulletListGrouping(t *testing.T) {
	got := RenderBody([]string{"- a", "- b", "x"})
	want := strings.Join([]string{"<ul>", "<li>a</li>", "<li>b</li>", "</ul>", "<p>x</p>"}, "\n")
	if got != want {
		t.Fatalf("list grouping:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyStarBullets(t *testing.T) {
	got := RenderBody([]string{"* a", "* b"})
	want := strings.Join([]string{"<ul>", "<li>a</li>", "<li>b</li>", "</ul>"}, "\n")
	if got != want {
		t.Fatalf("star bullets:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyNumberedListDiscardsNumbers(t *testing.T) {
	got := RenderBody([]string{"4. first", "9. second", "done"})
	want := strings.Join([]string{"<ol>", "<li>first</li>", "<li>second</li>", "</ol>", "<p>done</p>"}, "\n")
	if got != want {
		t.Fatalf("numbered list:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyListSwitchClosesPrevious(t *testing.T) {
	got := RenderBody([]string{"- a", "1. b"})
	want := strings.Join([]string{"<ul>", "<li>a</li>", "</ul>", "<ol>", "<li>b</li>", "</ol>"}, "\n")
	if got != want {
		t.Fatalf("bullet to numbered switch:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyEndOfDocumentClosesList(t *testing.T) {
	got := RenderBody([]string{"- only item"})
	want := strings.Join([]string{"<ul>", "<li>only item</li>", "</ul>"}, "\n")
	if got != want {
		t.Fatalf("dangling list:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyBlockquoteFlushing(t *testing.T) {
	got := RenderBody([]string{"> line1", "> line2", "x"})
	want := "<blockquote>line1 line2</blockquote>\n<p>x</p>"
	if got != want {
		t.Fatalf("blockquote flush:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyBlockquoteAtEndOfDocument(t *testing.T) {
	got := RenderBody([]string{"> alone"})
	want := "<blockquote>alone</blockquote>"
	if got != want {
		t.Fatalf("unflushed quote:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyBlockquoteInlineProcessing(t *testing.T) {
	got := RenderBody([]string{"> some **bold** text"})
	want := "<blockquote>some <strong>bold</strong> text</blockquote>"
	if got != want {
		t.Fatalf("quote inline spans:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyQuoteThenListClosesQuoteFirst(t *testing.T) {
	got := RenderBody([]string{"> q", "- a"})
	want := strings.Join([]string{"<blockquote>q</blockquote>", "<ul>", "<li>a</li>", "</ul>"}, "\n")
	if got != want {
		t.Fatalf("quote to list transition:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyCodeFenceEscaping(t *testing.T) {
	got := RenderBody([]string{"```", "<b>", "```"})
	want := strings.Join([]string{"<pre><code>", "&lt;b&gt;", "</code></pre>"}, "\n")
	if got != want {
		t.Fatalf("fence escaping:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyCodeFenceSuppressesRecognition(t *testing.T) {
	got := RenderBody([]string{"```", "# not a header", "- not a bullet", "**not bold**", "```"})
	want := strings.Join([]string{
		"<pre><code>",
		"# not a header",
		"- not a bullet",
		"**not bold**",
		"</code></pre>",
	}, "\n")
	if got != want {
		t.Fatalf("fence leaked recognition:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyUnterminatedFenceAutoCloses(t *testing.T) {
	// An unterminated fence consumes the rest of the document as code and is
	// closed during end-of-document cleanup.
	got := RenderBody([]string{"```", "trailing code"})
	want := strings.Join([]string{"<pre><code>", "trailing code", "</code></pre>"}, "\n")
	if got != want {
		t.Fatalf("unterminated fence:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyListSurvivesFence(t *testing.T) {
	// A fence suspends list tracking without closing the list; the list
	// closes on the first non-item line after the fence ends.
	got := RenderBody([]string{"- a", "```", "x", "```", "b"})
	want := strings.Join([]string{
		"<ul>",
		"<li>a</li>",
		"<pre><code>",
		"x",
		"</code></pre>",
		"</ul>",
		"<p>b</p>",
	}, "\n")
	if got != want {
		t.Fatalf("list across fence:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderBodyBlankLinesPreserved(t *testing.T) {
	got := RenderBody([]string{"a", "", "b"})
	want := "<p>a</p>\n\n<p>b</p>"
	if got != want {
		t.Fatalf("blank line collapsed:\ngot  %q\nwant %q", got, want)
	}
}

func TestEscapeHTMLSinglePass(t *testing.T) {
	if got := EscapeHTML("&"); got != "&amp;" {
		t.Fatalf("EscapeHTML(&) = %q", got)
	}
	// No double-escape collapsing: escaping escaped input escapes again.
	if got := EscapeHTML("&amp;"); got != "&amp;amp;" {
		t.Fatalf("EscapeHTML(&amp;) = %q", got)
	}
	if got := EscapeHTML("<b> & </b>"); got != "&lt;b&gt; &amp; &lt;/b&gt;" {
		t.Fatalf("EscapeHTML mixed = %q", got)
	}
}

func TestLineParserParse(t *testing.T) {
	parser := NewLineParser()

	html, err := parser.Parse([]byte("# Title\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := "<h1>Title</h1>\n\n<p>Hello <strong>world</strong></p>"
	if string(html) != want {
		t.Fatalf("Parse = %q, want %q", string(html), want)
	}
}

func TestGoldmarkParserParse(t *testing.T) {
	parser := NewGoldmarkParser()

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}
