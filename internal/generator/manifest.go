package generator

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	manifestFileName    = ".blog-manifest.json"
	manifestFileVersion = 1
)

// buildManifest records metadata about the last successful build. It is
// informational: builds are always full rebuilds, the manifest just lets
// deploy tooling tell what changed between runs.
type buildManifest struct {
	Version     int                     `json:"version"`
	BuildID     string                  `json:"build_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Posts       map[string]manifestPost `json:"posts"`
}

type manifestPost struct {
	Slug       string    `json:"slug"`
	Route      string    `json:"route"`
	Output     string    `json:"output"`
	Date       string    `json:"date"`
	Checksum   string    `json:"checksum"`
	RenderedAt time.Time `json:"rendered_at"`
}

func newBuildManifest(buildID string, generatedAt time.Time) *buildManifest {
	return &buildManifest{
		Version:     manifestFileVersion,
		BuildID:     buildID,
		GeneratedAt: generatedAt,
		Posts:       map[string]manifestPost{},
	}
}

func (m *buildManifest) addPost(post Post, renderedAt time.Time) {
	m.Posts[post.Slug] = manifestPost{
		Slug:       post.Slug,
		Route:      routeFor(post.Slug),
		Output:     outputPath(post.Slug),
		Date:       post.Date,
		Checksum:   post.Checksum,
		RenderedAt: renderedAt,
	}
}

func (m *buildManifest) marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// manifestDelta summarises how a build differs from the previous manifest.
type manifestDelta struct {
	Added   int
	Changed int
	Removed int
}

// diffManifest compares two manifests by slug and source checksum. A nil
// previous manifest counts every post as added.
func diffManifest(prev, next *buildManifest) manifestDelta {
	delta := manifestDelta{}
	if next == nil {
		return delta
	}
	if prev == nil {
		delta.Added = len(next.Posts)
		return delta
	}
	for slug, post := range next.Posts {
		old, ok := prev.Posts[slug]
		if !ok {
			delta.Added++
			continue
		}
		if old.Checksum != post.Checksum {
			delta.Changed++
		}
	}
	for slug := range prev.Posts {
		if _, ok := next.Posts[slug]; !ok {
			delta.Removed++
		}
	}
	return delta
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest("", time.Time{}), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Posts == nil {
		manifest.Posts = map[string]manifestPost{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}
