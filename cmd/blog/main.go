package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	sitecmd "github.com/goliatone/go-blog/internal/commands/site"
	"github.com/goliatone/go-blog/internal/generator"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	command := "build"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	var (
		configPath   = fs.String("config", "", "Path to an optional blog.yaml config file")
		contentDir   = fs.String("content-dir", "", "Posts directory (overrides config)")
		outputDir    = fs.String("output-dir", "", "Output directory (overrides config)")
		themeDir     = fs.String("theme-dir", "", "Theme manifest directory (overrides config)")
		themeVariant = fs.String("theme-variant", "", "Theme variant name (overrides config)")
		port         = fs.Int("port", 0, "Port for the preview server (overrides config)")
		logLevel     = fs.String("log-level", "", "Log level: trace, debug, info, warn, error, fatal")
		logFormat    = fs.String("log-format", "", "Log format: console, json, pretty")
		drafts       = fs.Bool("drafts", false, "Include draft posts in the build")
		force        = fs.Bool("force", false, "Overwrite the example post when initialising")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: blog [build|serve|init|clean] [flags]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	opts := bootstrap.Options{
		ConfigPath:   *configPath,
		ContentDir:   *contentDir,
		OutputDir:    *outputDir,
		ThemeDir:     *themeDir,
		ThemeVariant: *themeVariant,
		Port:         *port,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch command {
	case "build":
		err = runBuild(ctx, opts, *drafts)
	case "serve":
		err = runServe(ctx, opts, *drafts)
	case "init":
		err = runInit(ctx, opts, *force)
	case "clean":
		err = runClean(ctx, opts)
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func runBuild(ctx context.Context, opts bootstrap.Options, drafts bool) error {
	module, err := moduleBuilder(opts)
	if err != nil {
		return err
	}
	return buildSite(ctx, module, drafts)
}

func runServe(ctx context.Context, opts bootstrap.Options, drafts bool) error {
	module, err := moduleBuilder(opts)
	if err != nil {
		return err
	}

	// Mirror the build-on-demand behaviour: serve an up-to-date site even on
	// the first run.
	if _, err := os.Stat(module.Config.Output.Dir); os.IsNotExist(err) {
		if err := buildSite(ctx, module, drafts); err != nil {
			return err
		}
	}

	handler := sitecmd.NewServeSiteHandler(module.Logger)
	return handler.Execute(ctx, sitecmd.ServeSiteCommand{
		SiteDir: module.Config.Output.Dir,
		Port:    module.Config.Server.Port,
	})
}

func runInit(ctx context.Context, opts bootstrap.Options, force bool) error {
	cfg, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return err
	}

	// Scaffold before module construction: the markdown service refuses a
	// missing content directory.
	initHandler := sitecmd.NewInitSiteHandler(nil)
	err = initHandler.Execute(ctx, sitecmd.InitSiteCommand{
		Directory: cfg.Content.Dir,
		Force:     force,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Initialised %s\n", cfg.Content.Dir)

	module, err := moduleBuilder(opts)
	if err != nil {
		return err
	}
	return buildSite(ctx, module, false)
}

func runClean(ctx context.Context, opts bootstrap.Options) error {
	module, err := moduleBuilder(opts)
	if err != nil {
		return err
	}
	handler := sitecmd.NewCleanSiteHandler(module.Module.Generator(), module.Logger)
	if err := handler.Execute(ctx, sitecmd.CleanSiteCommand{}); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", module.Config.Output.Dir)
	return nil
}

func buildSite(ctx context.Context, module *bootstrap.Module, drafts bool) error {
	var result *generator.BuildResult
	handler := sitecmd.NewBuildSiteHandler(module.Module.Generator(), module.Logger)
	err := handler.Execute(ctx, sitecmd.BuildSiteCommand{
		IncludeDrafts: drafts,
		ResultCallback: func(envelope sitecmd.ResultEnvelope) {
			result = envelope.Result
		},
	})
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Printf("Built %d posts into %s (%s)\n",
			result.PostsBuilt, module.Config.Output.Dir, result.Duration.Round(time.Millisecond))
	}
	return nil
}
