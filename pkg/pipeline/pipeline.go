// Package pipeline provides the core analysis pipeline for targetnets.
//
// This package implements the complete load → build → layout → render
// pipeline for one analysis set (an input workbook, a title, a palette, and
// an output image). Centralizing it keeps the CLI commands thin and gives
// every entry point identical caching and logging behavior.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read and clean the miRNA target table
//  2. Build: derive the categorized shared-target edge list
//  3. Layout: place miRNA and gene nodes on the fixed rings
//  4. Render: rasterize the annotated figure to PNG
//
// Each Execute call is independent; running the up- and down-regulated sets
// is two sequential calls that share nothing but the Runner's cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:   "metascapemiRNAsup.xlsx",
//	    Output:  "network_up_alllabels.png",
//	    Title:   "A) Upregulated miRNAs",
//	    Palette: cfg.Up.Palette,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	err = result.WriteFile(opts.Output)
package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mirnatools/targetnets/pkg/cache"
	"github.com/mirnatools/targetnets/pkg/errors"
	"github.com/mirnatools/targetnets/pkg/layout"
	"github.com/mirnatools/targetnets/pkg/render"
)

// Options contains all configuration for one analysis set.
type Options struct {
	// Input is the target table workbook (.xlsx or .csv). Required.
	Input string

	// Output is the destination PNG path. Used for cache bookkeeping and
	// Result.WriteFile; Execute itself never writes it.
	Output string

	// Title is drawn at the top left of the figure.
	Title string

	// Palette is the ordered miRNA color list. Required.
	Palette []string

	// Layout geometry. Zero value takes layout.DefaultConfig.
	Layout layout.Config

	// Style controls the rendered appearance. Zero value takes
	// render.DefaultStyle.
	Style render.Style

	// Canvas size in pixels. Zero values take the render defaults.
	Width  int
	Height int

	// Refresh bypasses the artifact cache.
	Refresh bool

	// Logger for stage progress. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input is required")
	}
	if len(o.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette must list at least one color")
	}
	if o.Layout.OuterRadius == 0 {
		o.Layout = layout.DefaultConfig()
	}
	if o.Style.RingColors == nil {
		o.Style = render.DefaultStyle()
	}
	if o.Width == 0 {
		o.Width = render.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = render.DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// artifactKeyOpts collects every option that changes rendered pixels.
func (o *Options) artifactKeyOpts() cache.ArtifactKeyOpts {
	rings := make(map[string]float64, len(o.Layout.Rings)+1)
	for cat, r := range o.Layout.Rings {
		rings[string(cat)] = r
	}
	rings["outer"] = o.Layout.OuterRadius
	return cache.ArtifactKeyOpts{
		Title:   o.Title,
		Palette: o.Palette,
		Rings:   rings,
		Style:   o.Style,
		Width:   o.Width,
		Height:  o.Height,
	}
}

// Result contains the outputs of one pipeline run.
type Result struct {
	// MiRNAs, Genes, and Edges count the distinct miRNAs, distinct shared
	// genes, and retained edges of the built network.
	MiRNAs int
	Genes  int
	Edges  int

	// PaletteWrapped reports that colors repeated because the palette had
	// fewer entries than there were distinct miRNAs.
	PaletteWrapped bool

	// PNG is the rendered image.
	PNG []byte

	// Stats contains timing information.
	Stats Stats

	// CacheHit reports that the PNG came from the artifact cache.
	CacheHit bool
}

// Stats contains pipeline execution timings.
type Stats struct {
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// WriteFile persists the rendered PNG to path with 0644 permissions.
func (r *Result) WriteFile(path string) error {
	if err := os.WriteFile(path, r.PNG, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	return nil
}
