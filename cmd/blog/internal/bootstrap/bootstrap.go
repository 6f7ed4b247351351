// Package bootstrap builds configured blog modules for the CLI entry points.
package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures flag-level configuration for CLI bootstraps. Non-zero
// values override both the defaults and the optional config file.
type Options struct {
	ConfigPath     string
	ContentDir     string
	OutputDir      string
	ThemeDir       string
	ThemeVariant   string
	Port           int
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the logger the CLI command handlers use.
type Module struct {
	Module *blog.Module
	Config blog.Config
	Logger interfaces.Logger
}

// LoadConfig resolves the runtime configuration from defaults, the optional
// config file, and flag overrides, in that order.
func LoadConfig(opts Options) (blog.Config, error) {
	cfg := blog.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := blog.LoadConfigFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.Content.Dir = dir
	}
	if dir := strings.TrimSpace(opts.OutputDir); dir != "" {
		cfg.Output.Dir = dir
	}
	if dir := strings.TrimSpace(opts.ThemeDir); dir != "" {
		cfg.Theme.Dir = dir
	}
	if variant := strings.TrimSpace(opts.ThemeVariant); variant != "" {
		cfg.Theme.Variant = variant
	}
	if opts.Port > 0 {
		cfg.Server.Port = opts.Port
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}

// BuildModule constructs a blog module from the resolved configuration.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	moduleOpts := []blog.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, blog.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	return &Module{
		Module: module,
		Config: cfg,
		Logger: commands.CommandLogger(module.LoggerProvider(), "site"),
	}, nil
}
