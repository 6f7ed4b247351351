// Package markdown implements the blog's Markdown pipeline: a line-oriented
// block renderer with an inline span transformer, frontmatter extraction,
// and filesystem document loading.
package markdown
