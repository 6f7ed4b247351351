package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categoryPost     writeCategory = "post"
	categoryIndex    writeCategory = "index"
	categoryFeed     writeCategory = "feed"
	categorySitemap  writeCategory = "sitemap"
	categoryManifest writeCategory = "manifest"
	categoryAsset    writeCategory = "asset"
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	Path     string
	Content  []byte
	Category writeCategory
}

// artifactWriter abstracts output storage specifics for generator outputs.
// Every document write is independent, so callers are free to parallelise
// across documents if they wish; the generator itself stays sequential.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	RemoveAll(ctx context.Context, path string) error
}

// osWriter writes artifacts beneath a root directory on the local filesystem.
type osWriter struct {
	root string
}

func newOSWriter(root string) *osWriter {
	return &osWriter{root: filepath.Clean(root)}
}

func (w *osWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(w.join(path), 0o755)
}

func (w *osWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	target := w.join(req.Path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, req.Content, 0o644)
}

func (w *osWriter) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.RemoveAll(w.join(path))
}

func (w *osWriter) join(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return w.root
	}
	return filepath.Join(w.root, filepath.FromSlash(path))
}
