package runtimeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.Content.Dir != "posts" || cfg.Output.Dir != "public" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Server.Port != 8000 {
		t.Fatalf("unexpected default port: %d", cfg.Server.Port)
	}
}

func TestValidateRejectsMissingDirs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = " "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Output.Dir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateRejectsUnknownParser(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Markdown.Parser = "asciidoc"
	if err := cfg.Validate(); !errors.Is(err, ErrParserUnknown) {
		t.Fatalf("expected ErrParserUnknown, got %v", err)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected port validation error")
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.yaml")
	contents := "site:\n  title: Test Site\nserver:\n  port: 9000\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Site.Title != "Test Site" {
		t.Fatalf("title not overlaid: %q", cfg.Site.Title)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("port not overlaid: %d", cfg.Server.Port)
	}
	// Untouched sections keep their defaults.
	if cfg.Content.Dir != "posts" {
		t.Fatalf("defaults lost on overlay: %q", cfg.Content.Dir)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
