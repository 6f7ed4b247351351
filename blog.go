// Package blog assembles the static blog generator: Markdown ingestion, the
// page pipeline, the preview server, and the command handlers, behind a
// single Module façade.
package blog

import (
	"fmt"

	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/server"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// MarkdownService exports the markdown service contract for consumers of the blog package.
type MarkdownService = interfaces.MarkdownService

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// Logger exports the logging contract used throughout the module.
type Logger = interfaces.Logger

// LoggerProvider exports the logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Option customises Module construction.
type Option func(*Module)

// WithLoggerProvider overrides the logger provider built from the config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithMarkdownParser overrides the Markdown parser selected by the config.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(m *Module) {
		m.parser = parser
	}
}

// Module represents the top level blog runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser

	markdown  interfaces.MarkdownService
	generator generator.Service
}

// New constructs a blog module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.parser == nil {
		parser, err := parserFor(cfg.Markdown.Parser)
		if err != nil {
			return nil, err
		}
		m.parser = parser
	}

	markdownService, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
	}, m.parser, markdown.WithLogger(logging.MarkdownLogger(m.provider)))
	if err != nil {
		return nil, err
	}
	m.markdown = markdownService

	m.generator = generator.NewService(generator.Config{
		OutputDir:       cfg.Output.Dir,
		BaseURL:         cfg.Site.BaseURL,
		SiteTitle:       cfg.Site.Title,
		SiteSubtitle:    cfg.Site.Subtitle,
		GenerateFeed:    cfg.Output.GenerateFeed,
		GenerateSitemap: cfg.Output.GenerateSitemap,
		WriteManifest:   cfg.Output.WriteManifest,
		ThemeDir:        cfg.Theme.Dir,
		ThemeVariant:    cfg.Theme.Variant,
	}, generator.Dependencies{
		Markdown: m.markdown,
		Logger:   logging.GeneratorLogger(m.provider),
	})

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Markdown returns the configured markdown service.
func (m *Module) Markdown() MarkdownService {
	return m.markdown
}

// Generator returns the configured generator service.
func (m *Module) Generator() GeneratorService {
	return m.generator
}

// LoggerProvider returns the provider used for module-scoped loggers.
func (m *Module) LoggerProvider() LoggerProvider {
	return m.provider
}

// Server constructs a preview server over the configured output directory.
func (m *Module) Server() (*server.Server, error) {
	return server.New(server.Config{
		SiteDir: m.cfg.Output.Dir,
		Port:    m.cfg.Server.Port,
	}, logging.ServerLogger(m.provider))
}

func parserFor(name string) (interfaces.MarkdownParser, error) {
	switch name {
	case "", "line":
		return markdown.NewLineParser(), nil
	case "goldmark":
		return markdown.NewGoldmarkParser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrParserUnknown, name)
	}
}
