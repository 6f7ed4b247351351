package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrContentDirRequired   = runtimeconfig.ErrContentDirRequired
	ErrOutputDirRequired    = runtimeconfig.ErrOutputDirRequired
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
	ErrParserUnknown        = runtimeconfig.ErrParserUnknown
)

type (
	Config         = runtimeconfig.Config
	SiteConfig     = runtimeconfig.SiteConfig
	ContentConfig  = runtimeconfig.ContentConfig
	OutputConfig   = runtimeconfig.OutputConfig
	ThemeConfig    = runtimeconfig.ThemeConfig
	ServerConfig   = runtimeconfig.ServerConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
)

// DefaultConfig returns the out-of-the-box configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFile reads a YAML config file and overlays it on the defaults.
func LoadConfigFile(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
