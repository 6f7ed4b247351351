package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Sentinel errors surfaced by Validate so callers can branch on the exact
// misconfiguration without string matching.
var (
	ErrContentDirRequired   = errors.New("config: content dir is required")
	ErrOutputDirRequired    = errors.New("config: output dir is required")
	ErrLoggingLevelInvalid  = errors.New("config: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("config: logging format is invalid")
	ErrParserUnknown        = errors.New("config: markdown parser is unknown")
)

// Config is the root runtime configuration for the blog generator.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
	Theme    ThemeConfig    `yaml:"theme"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// SiteConfig carries the identity rendered into every page shell.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	BaseURL  string `yaml:"base_url"`
}

// ContentConfig captures filesystem behaviour for Markdown ingestion.
type ContentConfig struct {
	Dir       string `yaml:"dir"`
	Pattern   string `yaml:"pattern"`
	Recursive bool   `yaml:"recursive"`
}

// OutputConfig controls where and how the generated site is written.
type OutputConfig struct {
	Dir             string `yaml:"dir"`
	GenerateFeed    bool   `yaml:"generate_feed"`
	GenerateSitemap bool   `yaml:"generate_sitemap"`
	WriteManifest   bool   `yaml:"write_manifest"`
}

// ThemeConfig points at an optional go-theme manifest directory whose tokens
// override the built-in stylesheet variables.
type ThemeConfig struct {
	Dir     string `yaml:"dir"`
	Variant string `yaml:"variant"`
}

// ServerConfig configures the development file server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig selects the go-logger output level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MarkdownConfig selects the rendering engine. The line engine is the
// default; "goldmark" opts into full CommonMark.
type MarkdownConfig struct {
	Parser string `yaml:"parser"`
}

// DefaultConfig returns the out-of-the-box behaviour: posts/ in, public/
// out, port 8000, console logging, the line engine.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title:    "My Blog",
			Subtitle: "A minimal, no-nonsense blog",
		},
		Content: ContentConfig{
			Dir:     "posts",
			Pattern: "*.md",
		},
		Output: OutputConfig{
			Dir:             "public",
			GenerateFeed:    true,
			GenerateSitemap: true,
			WriteManifest:   true,
		},
		Server: ServerConfig{
			Port: 8000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Markdown: MarkdownConfig{
			Parser: "line",
		},
	}
}

// LoadFile reads a YAML config file and overlays it on the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return ErrOutputDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "", "console", "json", "pretty":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Markdown.Parser)) {
	case "", "line", "goldmark":
	default:
		return fmt.Errorf("%w: %s", ErrParserUnknown, cfg.Markdown.Parser)
	}

	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Server, validation.By(func(any) error {
			if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
				return validation.NewError("blog.config.server_port_range", "server port must be between 0 and 65535")
			}
			return nil
		})),
	)
}
