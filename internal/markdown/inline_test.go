package markdown

import "testing"

func TestRenderInlinePlainTextIdentity(t *testing.T) {
	cases := []string{
		"",
		"just a plain sentence",
		"numbers 123 and punctuation, like; this.",
		"snake_case_name stays intact",
	}
	for _, input := range cases {
		if got := RenderInline(input); got != input {
			t.Fatalf("RenderInline(%q) = %q, want identity", input, got)
		}
	}
}

func TestRenderInlineSpans(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bold stars", "**x**", "<strong>x</strong>"},
		{"bold underscores", "__x__", "<strong>x</strong>"},
		{"italic star", "*x*", "<em>x</em>"},
		{"italic underscore", "_x_", "<em>x</em>"},
		{"highlight", "==note==", "<mark>note</mark>"},
		{"inline code", "`code`", "<code>code</code>"},
		{"link", "[text](url)", `<a href="url">text</a>`},
		{"image", "![a](u.png)", `<img src="u.png" alt="a">`},
		{"nested emphasis", "**a *b* c**", "<strong>a <em>b</em> c</strong>"},
		{"mixed line", "see [docs](d) and **read**", `see <a href="d">docs</a> and <strong>read</strong>`},
	}
	for _, tc := range cases {
		if got := RenderInline(tc.input); got != tc.want {
			t.Fatalf("%s: RenderInline(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestRenderInlineImageBeforeLink(t *testing.T) {
	got := RenderInline("![a](u.png)")
	want := `<img src="u.png" alt="a">`
	if got != want {
		t.Fatalf("image swallowed by link rule: got %q, want %q", got, want)
	}

	got = RenderInline("![pic](i.png) then [go](h)")
	want = `<img src="i.png" alt="pic"> then <a href="h">go</a>`
	if got != want {
		t.Fatalf("mixed image and link: got %q, want %q", got, want)
	}
}

func TestRenderInlineUnderscoreBoundary(t *testing.T) {
	// Underscores inside identifiers must not produce emphasis; standalone
	// underscored words must.
	if got := RenderInline("call some_func_name here"); got != "call some_func_name here" {
		t.Fatalf("identifier gained markup: %q", got)
	}
	if got := RenderInline("an _emphasised_ word"); got != "an <em>emphasised</em> word" {
		t.Fatalf("standalone underscores not emphasised: %q", got)
	}
}

func TestRenderInlineNoProseEscaping(t *testing.T) {
	// Raw markup typed by the author passes through untouched. This is a
	// documented compatibility guarantee, not an oversight.
	input := "5 < 6 && <b>raw</b>"
	if got := RenderInline(input); got != input {
		t.Fatalf("prose was escaped: %q", got)
	}
}

func TestRenderInlineShortestSpan(t *testing.T) {
	got := RenderInline("**a** and **b**")
	want := "<strong>a</strong> and <strong>b</strong>"
	if got != want {
		t.Fatalf("greedy bold match: got %q, want %q", got, want)
	}
}
