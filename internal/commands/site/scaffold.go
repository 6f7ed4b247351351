package sitecmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const examplePostName = "my-first-post.md"

const examplePost = `---
title: My first post
date: 2025-01-15
---

Welcome to my blog!

This is an example post written in **Markdown**. You can edit or delete it.

## Features

- Write in Markdown
- Automatic light/dark theme
- Fast and lightweight
- No JavaScript, no trackers

## Code example

` + "```python" + `
print("Hello, World!")
` + "```" + `

> "Simplicity is the ultimate sophistication." - Leonardo da Vinci

Happy writing!
`

// ScaffoldResult reports what the init scaffold actually wrote.
type ScaffoldResult struct {
	Directory   string
	PostCreated bool
	PostPath    string
}

// ScaffoldSite creates the posts directory and an example post. An existing
// example post is left alone unless force is set.
func ScaffoldSite(ctx context.Context, dir string, force bool) (*ScaffoldResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := filepath.Clean(dir)
	if err := os.MkdirAll(cleaned, 0o755); err != nil {
		return nil, fmt.Errorf("site: create posts directory %s: %w", cleaned, err)
	}

	result := &ScaffoldResult{
		Directory: cleaned,
		PostPath:  filepath.Join(cleaned, examplePostName),
	}

	if !force {
		if _, err := os.Stat(result.PostPath); err == nil {
			return result, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("site: stat example post: %w", err)
		}
	}

	if err := os.WriteFile(result.PostPath, []byte(examplePost), 0o644); err != nil {
		return nil, fmt.Errorf("site: write example post: %w", err)
	}
	result.PostCreated = true
	return result, nil
}
