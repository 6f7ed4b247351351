package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// themeOverlay carries the pieces a go-theme manifest contributes to a
// build: CSS variable overrides for the built-in stylesheet, and asset files
// to copy into the output directory.
type themeOverlay struct {
	dir    string
	vars   map[string]string
	assets []string
}

// loadThemeOverlay resolves the optional theme directory into an overlay.
// An empty dir means the built-in stylesheet runs unmodified.
func loadThemeOverlay(dir, variant string) (*themeOverlay, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}

	cleaned := filepath.Clean(dir)
	manifest, err := gotheme.LoadDir(os.DirFS(cleaned), ".")
	if err != nil {
		return nil, fmt.Errorf("generator: load theme manifest from %s: %w", cleaned, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("generator: theme manifest in %s has no name", cleaned)
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("generator: register theme manifest: %w", err)
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: strings.TrimSpace(variant),
	}
	selection, err := selector.Select(manifest.Name, strings.TrimSpace(variant))
	if err != nil {
		return nil, fmt.Errorf("generator: select theme %s: %w", manifest.Name, err)
	}

	return &themeOverlay{
		dir:    cleaned,
		vars:   selection.CSSVariables("--"),
		assets: collectThemeAssets(selection),
	}, nil
}

// cssBlock renders the overlay's token overrides as a :root block appended
// after the built-in stylesheet, so manifest values win the cascade.
func (o *themeOverlay) cssBlock() string {
	if o == nil || len(o.vars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(o.vars))
	for key := range o.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "    %s: %s;\n", key, o.vars[key])
	}
	b.WriteString("}\n")
	return b.String()
}

// collectThemeAssets merges the manifest's base asset files with the active
// variant's overrides and returns the deduplicated relative paths to copy.
func collectThemeAssets(selection *gotheme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	files := selection.Manifest.Assets.Files
	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		if v, ok := selection.Manifest.Variants[variant]; ok && len(v.Assets.Files) > 0 {
			merged := make(map[string]string, len(files)+len(v.Assets.Files))
			for key, path := range files {
				merged[key] = path
			}
			for key, path := range v.Assets.Files {
				merged[key] = path
			}
			files = merged
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range files {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	sort.Strings(out)
	return out
}
