package sitecmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/server"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// ErrGeneratorRequired is returned when a handler is constructed without a generator service.
var ErrGeneratorRequired = errors.New("site command: generator service is required")

var (
	_ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)
	_ command.Commander[CleanSiteCommand] = (*CleanSiteHandler)(nil)
	_ command.Commander[InitSiteCommand]  = (*InitSiteHandler)(nil)
	_ command.Commander[ServeSiteCommand] = (*ServeSiteHandler)(nil)
)

// BuildSiteHandler orchestrates generator builds using the shared command handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided generator service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrGeneratorRequired
		}

		result, err := service.Build(ctx, generator.BuildOptions{
			IncludeDrafts: msg.IncludeDrafts,
			DryRun:        msg.DryRun,
		})
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build",
			},
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand]("site.build"),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.IncludeDrafts {
				fields["include_drafts"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler clears the generated site output.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that cleans generator output.
func NewCleanSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, _ CleanSiteCommand) error {
		if service == nil {
			return ErrGeneratorRequired
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand]("site.clean"),
		commands.WithTelemetry(commands.DefaultTelemetry[CleanSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InitSiteHandler scaffolds a posts directory with an example post.
type InitSiteHandler struct {
	inner *commands.Handler[InitSiteCommand]
}

// NewInitSiteHandler constructs a handler that performs init scaffolding.
func NewInitSiteHandler(logger interfaces.Logger, opts ...commands.HandlerOption[InitSiteCommand]) *InitSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg InitSiteCommand) error {
		result, err := ScaffoldSite(ctx, msg.Directory, msg.Force)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"directory":    result.Directory,
			"post_created": result.PostCreated,
		}).Info("site.init.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[InitSiteCommand]{
		commands.WithLogger[InitSiteCommand](baseLogger),
		commands.WithOperation[InitSiteCommand]("site.init"),
		commands.WithMessageFields(func(msg InitSiteCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Force {
				fields["force"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[InitSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InitSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[InitSiteCommand].
func (h *InitSiteHandler) Execute(ctx context.Context, msg InitSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ServeSiteHandler hosts a built site until the context is cancelled.
// Serving has no natural deadline, so the handler disables the shared timeout.
type ServeSiteHandler struct {
	inner *commands.Handler[ServeSiteCommand]
}

// NewServeSiteHandler constructs a handler that runs the preview server.
func NewServeSiteHandler(logger interfaces.Logger, opts ...commands.HandlerOption[ServeSiteCommand]) *ServeSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ServeSiteCommand) error {
		srv, err := server.New(server.Config{
			SiteDir: msg.SiteDir,
			Port:    msg.Port,
		}, baseLogger)
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	}

	handlerOpts := []commands.HandlerOption[ServeSiteCommand]{
		commands.WithLogger[ServeSiteCommand](baseLogger),
		commands.WithOperation[ServeSiteCommand]("site.serve"),
		commands.WithTimeout[ServeSiteCommand](0),
		commands.WithMessageFields(func(msg ServeSiteCommand) map[string]any {
			return map[string]any{
				"site_dir": msg.SiteDir,
				"port":     msg.Port,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ServeSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ServeSiteCommand].
func (h *ServeSiteHandler) Execute(ctx context.Context, msg ServeSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
