package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

type captureLogger struct {
	entries []string
}

func (l *captureLogger) Trace(msg string, _ ...any) { l.entries = append(l.entries, msg) }
func (l *captureLogger) Debug(msg string, _ ...any) { l.entries = append(l.entries, msg) }
func (l *captureLogger) Info(msg string, _ ...any)  { l.entries = append(l.entries, msg) }
func (l *captureLogger) Warn(msg string, _ ...any)  { l.entries = append(l.entries, msg) }
func (l *captureLogger) Error(msg string, _ ...any) { l.entries = append(l.entries, msg) }
func (l *captureLogger) Fatal(msg string, _ ...any) { l.entries = append(l.entries, msg) }

func (l *captureLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *captureLogger) has(msg string) bool {
	for _, entry := range l.entries {
		if entry == msg {
			return true
		}
	}
	return false
}

func TestServiceLoadRendersDocument(t *testing.T) {
	svc, err := NewService(Config{BasePath: "testdata"}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	doc, err := svc.Load(context.Background(), "basic.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.FrontMatter.Title != "My First Post" {
		t.Fatalf("Title = %q", doc.FrontMatter.Title)
	}
	html := string(doc.BodyHTML)
	if !strings.Contains(html, "<h1>My First Post</h1>") {
		t.Fatalf("body not rendered through the line engine: %q", html)
	}
	if !strings.Contains(html, "<strong>Markdown</strong>") {
		t.Fatalf("inline spans missing: %q", html)
	}
	if !strings.Contains(html, "<ul>") || !strings.Contains(html, "<blockquote>") {
		t.Fatalf("block structure missing: %q", html)
	}
}

func TestServiceLoadDirectory(t *testing.T) {
	svc, err := NewService(Config{BasePath: "testdata"}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	docs, err := svc.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) == 0 {
		t.Fatalf("expected at least one document")
	}
	for _, doc := range docs {
		if len(doc.BodyHTML) == 0 {
			t.Fatalf("document %s not rendered", doc.FilePath)
		}
	}
}

func TestServiceRender(t *testing.T) {
	svc, err := NewService(Config{BasePath: "testdata"}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	html, err := svc.Render(context.Background(), []byte("- a\n- b"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"
	if string(html) != want {
		t.Fatalf("Render = %q, want %q", string(html), want)
	}
}

func TestServiceRenderDocumentNil(t *testing.T) {
	svc, err := NewService(Config{BasePath: "testdata"}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.RenderDocument(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestServiceLogsThroughInjectedLogger(t *testing.T) {
	logger := &captureLogger{}
	svc, err := NewService(Config{BasePath: "testdata"}, nil, WithLogger(logger))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.Load(context.Background(), "basic.md", interfaces.LoadOptions{}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !logger.has("document loaded") {
		t.Fatalf("missing load entry: %v", logger.entries)
	}

	if _, err := svc.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{}); err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if !logger.has("directory loaded") {
		t.Fatalf("missing directory entry: %v", logger.entries)
	}
}

func TestServiceMissingBasePath(t *testing.T) {
	if _, err := NewService(Config{BasePath: "does-not-exist"}, nil); err == nil {
		t.Fatalf("expected error for missing base path")
	}
}
