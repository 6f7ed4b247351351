package generator

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Post is the assembler's input record for a single page: metadata from the
// frontmatter step plus the already-rendered HTML body. Posts are built once
// per source document during a build and discarded afterwards.
type Post struct {
	Title        string
	Date         string
	Slug         string
	Summary      string
	BodyHTML     string
	Source       string
	Checksum     string
	LastModified time.Time
}

const pageTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>{{.CSS}}</style>
</head>
<body>
    <header>
        <a class="title" href="/">
            <h1><span class="logo">(╹ᴥ╹)</span> {{.SiteTitle}}</h1>
        </a>
        {{if .ShowNav}}<nav><a href="/">Home</a></nav>{{end}}
    </header>
    <main>
        {{.Main}}
    </main>
    <footer>
        <p>Style inspired by <a href="https://bearblog.dev">Bear Blog</a></p>
    </footer>
</body>
</html>
`

const articleTemplateText = `<article>
    <header>
        <h1>{{.Title}}</h1>
        <time datetime="{{.Date}}">{{.Date}}</time>
    </header>
    {{.Body}}
    <a class="back-link" href="/">&larr; Back</a>
</article>
`

const indexTemplateText = `<h2>{{.Subtitle}}</h2>
<p>Welcome to my blog.</p>
<h3>Posts</h3>
{{if .Posts}}<ul class="blog-posts">
{{range .Posts}}    <li>
        <span>{{.Date}}</span>
        <a href="/{{.Slug}}.html">{{.Title}}</a>
    </li>
{{end}}</ul>{{else}}<p><em>No posts yet. Add .md files to the posts folder.</em></p>{{end}}
`

type pageContext struct {
	Title     string
	SiteTitle string
	ShowNav   bool
	CSS       template.CSS
	Main      template.HTML
}

type articleContext struct {
	Title string
	Date  string
	Body  template.HTML
}

type indexContext struct {
	Subtitle string
	Posts    []Post
}

// pageRenderer assembles full HTML documents from the fixed page shell. The
// shell and its fragments are parsed once and reused for every page.
type pageRenderer struct {
	page    *template.Template
	article *template.Template
	index   *template.Template
	css     template.CSS
}

func newPageRenderer(themeVars string) *pageRenderer {
	css := stylesheet
	if themeVars != "" {
		css += "\n" + themeVars
	}
	return &pageRenderer{
		page:    template.Must(template.New("page").Parse(pageTemplateText)),
		article: template.Must(template.New("article").Parse(articleTemplateText)),
		index:   template.Must(template.New("index").Parse(indexTemplateText)),
		css:     template.CSS(css),
	}
}

// RenderPost produces the complete HTML document for a single post page.
func (r *pageRenderer) RenderPost(siteTitle string, post Post) (string, error) {
	var article strings.Builder
	err := r.article.Execute(&article, articleContext{
		Title: post.Title,
		Date:  post.Date,
		Body:  template.HTML(post.BodyHTML),
	})
	if err != nil {
		return "", fmt.Errorf("generator: render article %s: %w", post.Slug, err)
	}

	return r.wrapPage(post.Title, siteTitle, article.String(), true)
}

// RenderIndex produces the chronological listing page.
func (r *pageRenderer) RenderIndex(siteTitle, subtitle string, posts []Post) (string, error) {
	var listing strings.Builder
	err := r.index.Execute(&listing, indexContext{
		Subtitle: subtitle,
		Posts:    posts,
	})
	if err != nil {
		return "", fmt.Errorf("generator: render index: %w", err)
	}

	return r.wrapPage(siteTitle, siteTitle, listing.String(), false)
}

func (r *pageRenderer) wrapPage(title, siteTitle, main string, showNav bool) (string, error) {
	var out strings.Builder
	err := r.page.Execute(&out, pageContext{
		Title:     title,
		SiteTitle: siteTitle,
		ShowNav:   showNav,
		CSS:       r.css,
		Main:      template.HTML(main),
	})
	if err != nil {
		return "", fmt.Errorf("generator: render page %s: %w", title, err)
	}
	return out.String(), nil
}
