package generator

import "strings"

// outputPath returns the flat output file for a post slug. Posts are written
// as <slug>.html beside index.html, matching the routes the index page links.
func outputPath(slug string) string {
	return slug + ".html"
}

func routeFor(slug string) string {
	return "/" + outputPath(slug)
}

// absoluteURL joins the configured base URL with a site-relative route.
func absoluteURL(baseURL, route string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if base == "" {
		return route
	}
	return base + route
}
