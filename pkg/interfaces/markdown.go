package interfaces

import (
	"context"
	"time"
)

// FrontMatter captures the metadata header of a Markdown post. Date is kept
// as a string in ISO 8601 form (YYYY-MM-DD) so posts sort chronologically
// with a plain string comparison; free-text dates are passed through as-is
// and sort wherever string ordering puts them.
type FrontMatter struct {
	Title   string
	Slug    string
	Summary string
	Date    string
	Tags    []string
	Draft   bool
	Custom  map[string]any
	Raw     map[string]any
}

// Document represents a single Markdown source file and its parsed pieces.
// Documents are ephemeral: they exist for the duration of one build and are
// never persisted.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	Checksum     []byte
	LastModified time.Time
}

// MarkdownParser renders Markdown source into an HTML body fragment.
// Implementations must be stateless so a single instance can be shared
// across documents without locking.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
}

// LoadOptions provide call-specific overrides for document discovery.
type LoadOptions struct {
	Pattern   string
	Recursive *bool
}

// MarkdownService exposes filesystem-backed Markdown loading and rendering.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document) ([]byte, error)
}
