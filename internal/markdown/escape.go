package markdown

import "strings"

// EscapeHTML neutralises markup characters in code fence content. Ampersands
// are escaped before angle brackets so the entities produced by the bracket
// substitutions are not escaped a second time. Escaping is applied exactly
// once per line; already-escaped input is escaped again rather than detected.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	return strings.ReplaceAll(text, ">", "&gt;")
}
