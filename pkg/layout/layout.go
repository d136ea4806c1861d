// Package layout computes the deterministic circular layout for a
// shared-target network.
//
// miRNA nodes sit evenly spaced on a fixed outer circle; each sharing
// category's genes sit evenly spaced on that category's fixed ring, with the
// most-shared genes innermost. All angular positions start at angle 0 and
// advance counterclockwise by 2π/n, so the same edge list always produces
// the same geometry. Positions live only for the duration of one render.
package layout

import (
	"math"

	"github.com/mirnatools/targetnets/pkg/netmap"
)

// Point is a 2D position in abstract plot units (not pixels). The renderer
// scales these onto the canvas.
type Point struct {
	X float64
	Y float64
}

// Config holds the ring geometry. Radii are in the same abstract units as
// Point; only their ratios matter to the renderer.
type Config struct {
	// OuterRadius is the miRNA circle, always the outermost ring.
	OuterRadius float64

	// Rings maps each sharing category to its gene ring radius. The
	// most-shared category gets the smallest radius.
	Rings map[netmap.Category]float64
}

// DefaultConfig returns the stock ring geometry: miRNAs at 5.2, genes
// shared by 2 at 3.8, by 3 at 2.3, by 4+ at 1.1.
func DefaultConfig() Config {
	return Config{
		OuterRadius: 5.2,
		Rings: map[netmap.Category]float64{
			netmap.CategoryPair:   3.8,
			netmap.CategoryTriple: 2.3,
			netmap.CategoryMany:   1.1,
		},
	}
}

// Layout is the computed geometry and color assignment for one render. It is
// derived from the edge list and a palette; nothing in it is persisted.
type Layout struct {
	// MiRNAs in first-appearance order; index in this slice determines both
	// the angular position and the palette color.
	MiRNAs []string

	// Genes per category in first-appearance order. Categories with no
	// genes are absent.
	Genes map[netmap.Category][]string

	// Positions of every node (miRNA and gene) by identifier.
	Positions map[string]Point

	// Colors assigned to each miRNA from the palette.
	Colors map[string]string

	// PaletteWrapped reports that there were more distinct miRNAs than
	// palette entries and colors repeated. Callers may want to warn.
	PaletteWrapped bool

	// Config echoes the geometry used, so the renderer can draw guide
	// circles without a second source of truth.
	Config Config
}

// Compute assigns positions and colors for the given edge list.
//
// Palette colors are consumed in miRNA first-appearance order. When the
// palette has fewer entries than there are distinct miRNAs, assignment wraps
// around modulo the palette length and PaletteWrapped is set; an empty
// palette leaves all colors unassigned (renderer falls back to a neutral
// color).
func Compute(edges []netmap.Edge, palette []string, cfg Config) Layout {
	l := Layout{
		MiRNAs:    netmap.MiRNAs(edges),
		Genes:     netmap.GenesByCategory(edges),
		Positions: make(map[string]Point),
		Colors:    make(map[string]string),
		Config:    cfg,
	}

	for i, mir := range l.MiRNAs {
		l.Positions[mir] = onCircle(i, len(l.MiRNAs), cfg.OuterRadius)
		if len(palette) > 0 {
			l.Colors[mir] = palette[i%len(palette)]
		}
	}
	if len(palette) > 0 && len(l.MiRNAs) > len(palette) {
		l.PaletteWrapped = true
	}

	for _, cat := range netmap.Categories() {
		genes := l.Genes[cat]
		if len(genes) == 0 {
			continue
		}
		r := cfg.Rings[cat]
		for i, gene := range genes {
			l.Positions[gene] = onCircle(i, len(genes), r)
		}
	}

	return l
}

// onCircle places index i of n at angle 2π·i/n on a circle of radius r,
// excluding the endpoint (index n would coincide with index 0).
func onCircle(i, n int, r float64) Point {
	theta := 2 * math.Pi * float64(i) / float64(n)
	return Point{X: math.Cos(theta) * r, Y: math.Sin(theta) * r}
}
