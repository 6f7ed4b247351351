package generator

import (
	"testing"
	"time"
)

func TestManifestRoundTrip(t *testing.T) {
	generatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	manifest := newBuildManifest("build-1", generatedAt)
	manifest.addPost(Post{
		Slug:     "hello-world",
		Date:     "2025-01-15",
		Checksum: "abc123",
	}, generatedAt)

	data, err := manifest.marshal()
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Fatal("manifest should end with a newline")
	}

	parsed, err := parseManifest(data)
	if err != nil {
		t.Fatalf("parseManifest returned error: %v", err)
	}
	if parsed.BuildID != "build-1" {
		t.Fatalf("BuildID = %q", parsed.BuildID)
	}
	entry, ok := parsed.Posts["hello-world"]
	if !ok {
		t.Fatal("missing post entry")
	}
	if entry.Route != "/hello-world.html" || entry.Output != "hello-world.html" {
		t.Fatalf("entry paths = %q / %q", entry.Route, entry.Output)
	}
	if entry.Checksum != "abc123" {
		t.Fatalf("checksum = %q", entry.Checksum)
	}
}

func TestParseManifestEmptyInput(t *testing.T) {
	manifest, err := parseManifest(nil)
	if err != nil {
		t.Fatalf("parseManifest(nil) returned error: %v", err)
	}
	if manifest.Posts == nil {
		t.Fatal("expected initialised posts map")
	}
}

func TestParseManifestRejectsGarbage(t *testing.T) {
	if _, err := parseManifest([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestDiffManifest(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	prev := newBuildManifest("build-1", at)
	prev.addPost(Post{Slug: "kept", Checksum: "aaa"}, at)
	prev.addPost(Post{Slug: "edited", Checksum: "bbb"}, at)
	prev.addPost(Post{Slug: "retired", Checksum: "ccc"}, at)

	next := newBuildManifest("build-2", at)
	next.addPost(Post{Slug: "kept", Checksum: "aaa"}, at)
	next.addPost(Post{Slug: "edited", Checksum: "bbb2"}, at)
	next.addPost(Post{Slug: "fresh", Checksum: "ddd"}, at)

	delta := diffManifest(prev, next)
	if delta.Added != 1 || delta.Changed != 1 || delta.Removed != 1 {
		t.Fatalf("delta = %+v, want 1/1/1", delta)
	}
}

func TestDiffManifestWithoutPrevious(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	next := newBuildManifest("build-1", at)
	next.addPost(Post{Slug: "hello-world", Checksum: "abc"}, at)

	delta := diffManifest(nil, next)
	if delta.Added != 1 || delta.Changed != 0 || delta.Removed != 0 {
		t.Fatalf("delta = %+v, want every post counted as added", delta)
	}
}
