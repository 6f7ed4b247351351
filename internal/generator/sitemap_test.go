package generator

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSitemapIncludesIndexAndPosts(t *testing.T) {
	fallback := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	posts := []Post{
		{Slug: "alpha", LastModified: time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)},
		{Slug: "beta"},
	}

	sitemap := buildSitemap("https://example.com/", posts, fallback)

	if !strings.Contains(sitemap, "<loc>https://example.com/</loc>") {
		t.Fatal("missing index entry")
	}
	if !strings.Contains(sitemap, "<loc>https://example.com/alpha.html</loc>") {
		t.Fatal("missing post entry")
	}
	if !strings.Contains(sitemap, "<lastmod>2025-01-15T08:00:00Z</lastmod>") {
		t.Fatal("missing post lastmod")
	}
	if !strings.Contains(sitemap, "<lastmod>2025-03-01T00:00:00Z</lastmod>") {
		t.Fatal("zero modification time should fall back to build time")
	}
}

func TestBuildSitemapDeduplicatesSlugs(t *testing.T) {
	posts := []Post{{Slug: "alpha"}, {Slug: "alpha"}}
	sitemap := buildSitemap("https://example.com", posts, time.Now())
	if got := strings.Count(sitemap, "<loc>https://example.com/alpha.html</loc>"); got != 1 {
		t.Fatalf("duplicate slug emitted %d times", got)
	}
}

func TestBuildSitemapDefaultsBaseURL(t *testing.T) {
	sitemap := buildSitemap("", nil, time.Now())
	if !strings.Contains(sitemap, "<loc>http://localhost/</loc>") {
		t.Fatalf("expected localhost fallback:\n%s", sitemap)
	}
}
