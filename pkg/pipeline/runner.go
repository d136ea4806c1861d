package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mirnatools/targetnets/pkg/cache"
	"github.com/mirnatools/targetnets/pkg/layout"
	"github.com/mirnatools/targetnets/pkg/netmap"
	"github.com/mirnatools/targetnets/pkg/render"
	"github.com/mirnatools/targetnets/pkg/table"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. The two analysis sets (up- and down-regulated) run as
// two independent Execute calls on the same Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → build → layout → render pipeline for one
// analysis set. An input where no gene is shared by two miRNAs is not an
// error; the result carries the placeholder image. All failures are fatal
// and propagate unretried.
//
// Two cache layers apply, both keyed by the raw workbook content: the built
// edge list, and the rendered PNG (additionally keyed by every render
// option). Refresh bypasses both.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	raw, err := table.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}
	workbookHash := cache.Hash(raw)
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Build (or reuse the cached edge list)
	buildStart := time.Now()
	edges, cached := r.cachedEdges(ctx, workbookHash, opts.Refresh)
	if !cached {
		t, err := table.Parse(raw, filepath.Ext(opts.Input))
		if err != nil {
			return nil, err
		}
		cleaned := table.Clean(t)
		logger.Info("loaded target table",
			"input", opts.Input,
			"columns", len(cleaned.Columns),
			"duration", result.Stats.LoadTime)

		edges = netmap.Build(cleaned)
		if data, err := netmap.Marshal(edges); err == nil {
			_ = r.Cache.Set(ctx, cache.EdgesKey(workbookHash), data, cache.TTLEdges)
		}
	} else {
		logger.Debug("edge list cache hit", "input", opts.Input)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Edges = len(edges)
	result.MiRNAs = len(netmap.MiRNAs(edges))
	result.Genes = len(netmap.Genes(edges))

	logger.Info("built shared-target network",
		"mirnas", result.MiRNAs,
		"genes", result.Genes,
		"edges", result.Edges,
		"duration", result.Stats.BuildTime)
	if result.Edges == 0 {
		logger.Warn("no gene is shared by two or more miRNAs; rendering placeholder", "input", opts.Input)
	}

	// Artifact cache: keyed by workbook content plus every render option.
	key := cache.ArtifactKey(workbookHash, opts.artifactKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.PNG = data
			result.CacheHit = true
			logger.Debug("artifact cache hit", "key", key)
			return result, nil
		}
	}

	// Stage 3: Layout
	l := layout.Compute(edges, opts.Palette, opts.Layout)
	result.PaletteWrapped = l.PaletteWrapped
	if l.PaletteWrapped {
		logger.Warn("more miRNAs than palette colors; colors repeat",
			"mirnas", len(l.MiRNAs),
			"colors", len(opts.Palette))
	}

	// Stage 4: Render
	renderStart := time.Now()
	png, err := render.PNG(l, edges,
		render.WithTitle(opts.Title),
		render.WithStyle(opts.Style),
		render.WithSize(opts.Width, opts.Height),
	)
	if err != nil {
		return nil, err
	}
	result.PNG = png
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered network figure",
		"bytes", len(png),
		"duration", result.Stats.RenderTime)

	_ = r.Cache.Set(ctx, key, png, cache.TTLArtifact)

	return result, nil
}

// cachedEdges looks up a previously built edge list for the workbook hash.
// A corrupt entry is treated as a miss and rebuilt.
func (r *Runner) cachedEdges(ctx context.Context, workbookHash string, refresh bool) ([]netmap.Edge, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, cache.EdgesKey(workbookHash))
	if err != nil || !hit {
		return nil, false
	}
	edges, err := netmap.Unmarshal(data)
	if err != nil {
		return nil, false
	}
	return edges, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
