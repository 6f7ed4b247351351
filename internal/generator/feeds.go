package generator

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const (
	feedFileName = "feed.xml"
	maxFeedItems = 100
)

type feedItem struct {
	Title       string
	Summary     string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// buildFeedItems converts rendered posts into feed entries, newest first.
// Posts arrive already sorted by date descending; items beyond the cap are
// dropped from the tail.
func buildFeedItems(baseURL string, posts []Post, fallback time.Time) []feedItem {
	items := make([]feedItem, 0, len(posts))
	for _, post := range posts {
		published, err := time.Parse(dateLayout, post.Date)
		if err != nil {
			published = fallback
		}
		items = append(items, feedItem{
			Title:       post.Title,
			Summary:     post.Summary,
			Link:        absoluteURL(baseURL, routeFor(post.Slug)),
			GUID:        absoluteURL(baseURL, routeFor(post.Slug)),
			PublishedAt: published,
		})
	}
	if len(items) > maxFeedItems {
		items = append([]feedItem(nil), items[:maxFeedItems]...)
	}
	return items
}

// buildFeed renders an RSS 2.0 document for the site.
func buildFeed(title, subtitle, baseURL string, items []feedItem, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0">` + "\n")
	b.WriteString("  <channel>\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "    <link>%s</link>\n", html.EscapeString(absoluteURL(baseURL, "/")))
	fmt.Fprintf(&b, "    <description>%s</description>\n", html.EscapeString(subtitle))
	fmt.Fprintf(&b, "    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z))

	for _, item := range items {
		b.WriteString("    <item>\n")
		fmt.Fprintf(&b, "      <title>%s</title>\n", html.EscapeString(item.Title))
		fmt.Fprintf(&b, "      <link>%s</link>\n", html.EscapeString(item.Link))
		fmt.Fprintf(&b, "      <guid>%s</guid>\n", html.EscapeString(item.GUID))
		if item.Summary != "" {
			fmt.Fprintf(&b, "      <description>%s</description>\n", html.EscapeString(item.Summary))
		}
		fmt.Fprintf(&b, "      <pubDate>%s</pubDate>\n", item.PublishedAt.UTC().Format(time.RFC1123Z))
		b.WriteString("    </item>\n")
	}

	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}
