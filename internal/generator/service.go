package generator

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// dateLayout is the ISO form post dates are normalised to. Posts sort by this
// string, so anything that does not match falls wherever string order puts it.
const dateLayout = "2006-01-02"

const indexFileName = "index.html"

var (
	// ErrMarkdownRequired indicates the generator was wired without a markdown service.
	ErrMarkdownRequired = errors.New("generator: markdown service is required")
	// ErrOutputDirRequired indicates the generator has no output directory configured.
	ErrOutputDirRequired = errors.New("generator: output directory is required")
)

// Service describes the static site builder contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir       string
	BaseURL         string
	SiteTitle       string
	SiteSubtitle    string
	GenerateFeed    bool
	GenerateSitemap bool
	WriteManifest   bool
	ThemeDir        string
	ThemeVariant    string
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	IncludeDrafts bool
	DryRun        bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID       string
	PostsBuilt    int
	DraftsSkipped int
	AssetsCopied  int
	Posts         []Post
	Duration      time.Duration
	DryRun        bool
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Markdown interfaces.MarkdownService
	Logger   interfaces.Logger
}

// NewService wires a generator with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		writer: newOSWriter(cfg.OutputDir),
		now:    time.Now,
	}
}

type service struct {
	cfg    Config
	deps   Dependencies
	logger interfaces.Logger
	writer artifactWriter
	now    func() time.Time
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Markdown == nil {
		return nil, ErrMarkdownRequired
	}
	if strings.TrimSpace(s.cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	start := s.now()
	result := &BuildResult{
		BuildID: uuid.NewString(),
		DryRun:  opts.DryRun,
	}

	docs, err := s.deps.Markdown.LoadDirectory(ctx, ".", interfaces.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("generator: load posts: %w", err)
	}

	posts := make([]Post, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if doc.FrontMatter.Draft && !opts.IncludeDrafts {
			result.DraftsSkipped++
			s.logger.Debug("skipping draft", "path", doc.FilePath)
			continue
		}
		post, err := s.buildPost(ctx, doc, start)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	sortPosts(posts)
	result.Posts = posts
	result.PostsBuilt = len(posts)

	if opts.DryRun {
		result.Duration = s.now().Sub(start)
		return result, nil
	}

	overlay, err := loadThemeOverlay(s.cfg.ThemeDir, s.cfg.ThemeVariant)
	if err != nil {
		return nil, err
	}
	renderer := newPageRenderer(overlay.cssBlock())

	if err := s.writer.EnsureDir(ctx, "."); err != nil {
		return nil, fmt.Errorf("generator: ensure output directory: %w", err)
	}

	for _, post := range posts {
		html, err := renderer.RenderPost(s.cfg.SiteTitle, post)
		if err != nil {
			return nil, err
		}
		req := writeFileRequest{
			Path:     outputPath(post.Slug),
			Content:  []byte(html),
			Category: categoryPost,
		}
		if err := s.writer.WriteFile(ctx, req); err != nil {
			return nil, fmt.Errorf("generator: write %s: %w", req.Path, err)
		}
		s.logger.Debug("wrote post", "slug", post.Slug, "output", req.Path)
	}

	indexHTML, err := renderer.RenderIndex(s.cfg.SiteTitle, s.cfg.SiteSubtitle, posts)
	if err != nil {
		return nil, err
	}
	err = s.writer.WriteFile(ctx, writeFileRequest{
		Path:     indexFileName,
		Content:  []byte(indexHTML),
		Category: categoryIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: write index: %w", err)
	}

	if s.cfg.GenerateFeed {
		items := buildFeedItems(s.cfg.BaseURL, posts, start)
		feed := buildFeed(s.cfg.SiteTitle, s.cfg.SiteSubtitle, s.cfg.BaseURL, items, start)
		err := s.writer.WriteFile(ctx, writeFileRequest{
			Path:     feedFileName,
			Content:  []byte(feed),
			Category: categoryFeed,
		})
		if err != nil {
			return nil, fmt.Errorf("generator: write feed: %w", err)
		}
	}

	if s.cfg.GenerateSitemap {
		sitemap := buildSitemap(s.cfg.BaseURL, posts, start)
		err := s.writer.WriteFile(ctx, writeFileRequest{
			Path:     sitemapFileName,
			Content:  []byte(sitemap),
			Category: categorySitemap,
		})
		if err != nil {
			return nil, fmt.Errorf("generator: write sitemap: %w", err)
		}
	}

	copied, err := s.copyThemeAssets(ctx, overlay)
	if err != nil {
		return nil, err
	}
	result.AssetsCopied = copied

	if s.cfg.WriteManifest {
		previous := s.previousManifest()
		manifest := newBuildManifest(result.BuildID, start)
		for _, post := range posts {
			manifest.addPost(post, start)
		}
		data, err := manifest.marshal()
		if err != nil {
			return nil, err
		}
		err = s.writer.WriteFile(ctx, writeFileRequest{
			Path:     manifestFileName,
			Content:  data,
			Category: categoryManifest,
		})
		if err != nil {
			return nil, fmt.Errorf("generator: write manifest: %w", err)
		}
		delta := diffManifest(previous, manifest)
		s.logger.Info("manifest updated",
			"posts", len(manifest.Posts),
			"added", delta.Added,
			"changed", delta.Changed,
			"removed", delta.Removed,
		)
	}

	result.Duration = s.now().Sub(start)
	s.logger.Info("build complete",
		"posts", result.PostsBuilt,
		"drafts_skipped", result.DraftsSkipped,
		"duration", result.Duration,
	)
	return result, nil
}

// previousManifest loads the manifest left by the last build, if any. Builds
// are always full rebuilds, so a missing or corrupt manifest only costs the
// change summary, never the build.
func (s *service) previousManifest() *buildManifest {
	data, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, manifestFileName))
	if err != nil {
		return nil
	}
	manifest, err := parseManifest(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable manifest", "error", err)
		return nil
	}
	return manifest
}

// Clean removes the output directory and everything under it.
func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(s.cfg.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	return s.writer.RemoveAll(ctx, ".")
}

func (s *service) buildPost(ctx context.Context, doc *interfaces.Document, buildTime time.Time) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}

	body, err := s.deps.Markdown.RenderDocument(ctx, doc)
	if err != nil {
		return Post{}, fmt.Errorf("generator: render %s: %w", doc.FilePath, err)
	}

	stem := fileStem(doc.FilePath)

	title := strings.TrimSpace(doc.FrontMatter.Title)
	if title == "" {
		title = markdown.TitleFromStem(stem)
	}

	postSlug, err := resolveSlug(doc.FrontMatter.Slug, stem)
	if err != nil {
		return Post{}, fmt.Errorf("generator: slug for %s: %w", doc.FilePath, err)
	}

	date := strings.TrimSpace(doc.FrontMatter.Date)
	if date == "" {
		modified := doc.LastModified
		if modified.IsZero() {
			modified = buildTime
		}
		date = modified.Format(dateLayout)
	}

	return Post{
		Title:        title,
		Date:         date,
		Slug:         postSlug,
		Summary:      strings.TrimSpace(doc.FrontMatter.Summary),
		BodyHTML:     string(body),
		Source:       doc.FilePath,
		Checksum:     hex.EncodeToString(doc.Checksum),
		LastModified: doc.LastModified,
	}, nil
}

func (s *service) copyThemeAssets(ctx context.Context, overlay *themeOverlay) (int, error) {
	if overlay == nil || len(overlay.assets) == 0 {
		return 0, nil
	}

	copied := 0
	for _, asset := range overlay.assets {
		data, err := os.ReadFile(filepath.Join(overlay.dir, filepath.FromSlash(asset)))
		if err != nil {
			return copied, fmt.Errorf("generator: read theme asset %s: %w", asset, err)
		}
		req := writeFileRequest{
			Path:     path.Join("assets", asset),
			Content:  data,
			Category: categoryAsset,
		}
		if err := s.writer.WriteFile(ctx, req); err != nil {
			return copied, fmt.Errorf("generator: copy theme asset %s: %w", asset, err)
		}
		copied++
	}
	return copied, nil
}

// sortPosts orders newest first by the ISO date string, slug ascending when
// two posts share a date, so index order is stable across builds.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func resolveSlug(explicit, stem string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		candidate = stem
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", fmt.Errorf("slug is empty after normalisation")
	}
	return normalized, nil
}

func fileStem(filePath string) string {
	base := path.Base(filepath.ToSlash(filePath))
	return strings.TrimSuffix(base, path.Ext(base))
}
