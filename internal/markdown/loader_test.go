package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"first.md":        {Data: []byte("---\ntitle: First\ndate: 2025-01-01\n---\n\nbody one\n")},
		"second.md":       {Data: []byte("# Second\n\nbody two\n")},
		"notes.txt":       {Data: []byte("not markdown")},
		"drafts/third.md": {Data: []byte("nested body\n")},
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	result, err := loader.LoadFile(context.Background(), "first.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	doc := result.Document
	if doc.FilePath != "first.md" {
		t.Fatalf("FilePath = %q", doc.FilePath)
	}
	if doc.FrontMatter.Title != "First" {
		t.Fatalf("Title = %q", doc.FrontMatter.Title)
	}
	if len(doc.Checksum) == 0 {
		t.Fatalf("expected checksum to be recorded")
	}
	if len(result.Source) == 0 {
		t.Fatalf("expected raw source to be carried alongside the document")
	}
}

func TestLoaderLoadDirectorySkipsNonMatching(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 documents without recursion, got %d", len(results))
	}
	if results[0].Document.FilePath != "first.md" || results[1].Document.FilePath != "second.md" {
		t.Fatalf("unexpected ordering: %q, %q", results[0].Document.FilePath, results[1].Document.FilePath)
	}
}

func TestLoaderLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 documents with recursion, got %d", len(results))
	}
	if results[0].Document.FilePath != "drafts/third.md" {
		t.Fatalf("expected stable sort by path, got %q first", results[0].Document.FilePath)
	}
}

func TestLoaderPatternOverride(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{Pattern: "first.*"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 || results[0].Document.FilePath != "first.md" {
		t.Fatalf("pattern override not applied: %#v", results)
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, "first.md", LoadParams{}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if _, err := loader.LoadDirectory(ctx, ".", LoadParams{}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
