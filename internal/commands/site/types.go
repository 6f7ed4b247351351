package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-blog/internal/generator"
)

const (
	buildSiteMessageType = "blog.site.build"
	cleanSiteMessageType = "blog.site.clean"
	initSiteMessageType  = "blog.site.init"
	serveSiteMessageType = "blog.site.serve"
)

// ResultCallback receives build results produced by generator operations. The
// callback is optional and invoked synchronously from the handler when a
// BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a site command execution that
// produced a BuildResult.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a full site build.
type BuildSiteCommand struct {
	IncludeDrafts  bool           `json:"include_drafts,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (BuildSiteCommand) Validate() error { return nil }

// CleanSiteCommand removes the generated site output.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }

// InitSiteCommand scaffolds a content directory with an example post.
type InitSiteCommand struct {
	// Directory selects the posts directory to scaffold.
	Directory string `json:"directory"`
	// Force overwrites existing scaffold files when true.
	Force bool `json:"force,omitempty"`
}

// Type implements command.Message.
func (InitSiteCommand) Type() string { return initSiteMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd InitSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blog.site.init.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ServeSiteCommand hosts a built site directory over HTTP until cancelled.
type ServeSiteCommand struct {
	// SiteDir selects the built site directory to serve.
	SiteDir string `json:"site_dir"`
	// Port selects the listen port; zero falls back to the server default.
	Port int `json:"port,omitempty"`
}

// Type implements command.Message.
func (ServeSiteCommand) Type() string { return serveSiteMessageType }

// Validate ensures the site directory is present and the port is in range.
func (cmd ServeSiteCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(cmd.SiteDir) == "" {
		errs["site_dir"] = validation.NewError("blog.site.serve.site_dir_required", "site directory is required")
	}
	if cmd.Port < 0 || cmd.Port > 65535 {
		errs["port"] = validation.NewError("blog.site.serve.port_invalid", "port must be between 0 and 65535")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
