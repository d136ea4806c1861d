// Package cache provides content-addressed caching for rendered artifacts.
//
// The pipeline hashes each input workbook and the render options that shape
// the output; re-running the tool on unchanged inputs reuses the cached PNG
// instead of rebuilding and re-rendering. Two implementations are provided:
//
//   - FileCache: persistent cache under ~/.cache/targetnets/ for CLI usage
//   - NullCache: no-op cache for tests and --no-cache runs
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries. Edge lists are cheap to rebuild; rendered
// artifacts are the expensive stage and keep the longer TTL.
const (
	TTLEdges    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte payloads under string keys with expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// EdgesKey generates a cache key for a built edge list.
// workbookHash is the content hash of the raw input workbook.
func EdgesKey(workbookHash string) string {
	return hashKey("edges", workbookHash)
}

// ArtifactKeyOpts are the render options that participate in artifact keys.
// Any option that changes pixel output must be included here.
type ArtifactKeyOpts struct {
	Title   string
	Palette []string
	Rings   map[string]float64
	Style   any
	Width   int
	Height  int
}

// ArtifactKey generates a cache key for a rendered image.
func ArtifactKey(workbookHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", workbookHash, opts)
}
