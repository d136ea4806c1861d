// Package render rasterizes a shared-target network layout to a PNG image.
//
// The renderer draws the full annotated figure in one pass: dashed ring
// guides, edges colored by origin miRNA, category-colored gene markers,
// per-miRNA markers, halo-outlined labels, a title, and two legends below
// the plot. Output is a high-resolution PNG with a transparent background.
// Every call builds and releases its own drawing context; nothing is shared
// between renders.
package render

import (
	"bytes"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/mirnatools/targetnets/pkg/errors"
	"github.com/mirnatools/targetnets/pkg/layout"
	"github.com/mirnatools/targetnets/pkg/netmap"
)

// Default canvas size: an 11-inch square plot at 300 dpi plus a band below
// it for the two legends.
const (
	DefaultWidth  = 3300
	DefaultHeight = 3900
)

// PlaceholderMessage is drawn when the edge list is empty.
const PlaceholderMessage = "No shared targets (≥2)"

// Option configures PNG rendering.
type Option func(*renderer)

// WithTitle sets the figure title, drawn bold at the top left.
func WithTitle(title string) Option {
	return func(r *renderer) { r.title = title }
}

// WithStyle overrides the default visual style.
func WithStyle(s Style) Option {
	return func(r *renderer) { r.style = s }
}

// WithSize sets the canvas size in pixels. The plot occupies the top
// width×width square; anything below it holds the legends.
func WithSize(width, height int) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

type renderer struct {
	title  string
	style  Style
	width  int
	height int
}

// PNG renders the network as PNG bytes.
//
// An empty edge list is a valid terminal state: the result is a placeholder
// image carrying the title and a fixed "no shared targets" message. Errors
// only arise from font setup or PNG encoding and are fatal to the caller.
func PNG(l layout.Layout, edges []netmap.Edge, opts ...Option) ([]byte, error) {
	r := renderer{
		style:  DefaultStyle(),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 || r.height <= 0 {
		return nil, errors.New(errors.ErrCodeRender, "invalid canvas size %dx%d", r.width, r.height)
	}

	dc := gg.NewContext(r.width, r.height)

	if err := r.drawTitle(dc); err != nil {
		return nil, err
	}

	if len(edges) == 0 {
		if err := r.drawPlaceholder(dc); err != nil {
			return nil, err
		}
		return encode(dc)
	}

	r.drawGuides(dc, l)
	r.drawEdges(dc, l, edges)
	r.drawGeneNodes(dc, l)
	r.drawMiRNANodes(dc, l)
	if err := r.drawLabels(dc, l); err != nil {
		return nil, err
	}
	if err := r.drawLegends(dc, l); err != nil {
		return nil, err
	}

	return encode(dc)
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Geometry helpers
// =============================================================================

// pt converts a point size at the 11-inch reference figure to pixels on this
// canvas, so styles stay resolution independent.
func (r *renderer) pt(v float64) float64 {
	return v * float64(r.width) / (11.0 * 72.0)
}

// plotCenter is the center of the square plot region at the top of the
// canvas. The legend band sits below it.
func (r *renderer) plotCenter() (float64, float64) {
	return float64(r.width) / 2, float64(r.width) / 2
}

// plotScale maps layout units to pixels, leaving headroom outside the outer
// ring for the miRNA labels.
func (r *renderer) plotScale(cfg layout.Config) float64 {
	maxR := cfg.OuterRadius * 1.18
	if maxR <= 0 {
		return 1
	}
	return float64(r.width) / 2 / maxR
}

// toPixel converts a layout point to canvas coordinates (y axis flipped).
func (r *renderer) toPixel(p layout.Point, cfg layout.Config) (float64, float64) {
	cx, cy := r.plotCenter()
	s := r.plotScale(cfg)
	return cx + p.X*s, cy - p.Y*s
}

// =============================================================================
// Drawing passes
// =============================================================================

func (r *renderer) drawTitle(dc *gg.Context) error {
	if r.title == "" {
		return nil
	}
	face, err := boldFace(r.pt(r.style.TitleFontSize))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "load title font")
	}
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	margin := r.pt(24)
	dc.DrawStringAnchored(r.title, margin, margin, 0, 0.5)
	return nil
}

func (r *renderer) drawPlaceholder(dc *gg.Context) error {
	face, err := boldFace(r.pt(14))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "load placeholder font")
	}
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	cx, cy := r.plotCenter()
	dc.DrawStringAnchored(PlaceholderMessage, cx, cy, 0.5, 0.5)
	return nil
}

// drawGuides strokes a faint dashed circle at every gene ring radius and at
// the outer miRNA radius.
func (r *renderer) drawGuides(dc *gg.Context, l layout.Layout) {
	cx, cy := r.plotCenter()
	s := r.plotScale(l.Config)

	radii := make([]float64, 0, len(l.Config.Rings)+1)
	for _, cat := range netmap.Categories() {
		if rad, ok := l.Config.Rings[cat]; ok {
			radii = append(radii, rad)
		}
	}
	radii = append(radii, l.Config.OuterRadius)

	cr, cg, cb := hexToRGB(r.style.GuideColor, 0.83, 0.83, 0.83)
	dc.SetRGBA(cr, cg, cb, 0.35)
	dc.SetLineWidth(r.pt(0.35) + 1)
	dash := r.pt(4)
	dc.SetDash(dash, dash)
	for _, rad := range radii {
		dc.DrawCircle(cx, cy, rad*s)
		dc.Stroke()
	}
	dc.SetDash()
}

// drawEdges draws one line per edge, colored by the origin miRNA and
// weighted by the gene's sharing category. Duplicate edges from repeated
// cells draw over each other rather than being deduplicated.
func (r *renderer) drawEdges(dc *gg.Context, l layout.Layout, edges []netmap.Edge) {
	for _, e := range edges {
		from, okFrom := l.Positions[e.MiRNA]
		to, okTo := l.Positions[e.Gene]
		if !okFrom || !okTo {
			continue
		}

		hex, ok := l.Colors[e.MiRNA]
		if !ok {
			hex = r.style.FallbackColor
		}
		cr, cg, cb := hexToRGB(hex, 0.53, 0.53, 0.53)
		dc.SetRGBA(cr, cg, cb, r.style.EdgeAlpha)

		w := r.style.EdgeWidths[e.Category]
		if w == 0 {
			w = 0.6
		}
		dc.SetLineWidth(r.pt(w))

		x1, y1 := r.toPixel(from, l.Config)
		x2, y2 := r.toPixel(to, l.Config)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

// drawGeneNodes draws the small per-category gene markers with a white rim.
func (r *renderer) drawGeneNodes(dc *gg.Context, l layout.Layout) {
	rad := r.pt(r.style.GeneNodeRadius)
	for _, cat := range netmap.Categories() {
		genes := l.Genes[cat]
		if len(genes) == 0 {
			continue
		}
		cr, cg, cb := hexToRGB(r.style.RingColors[cat], 0.53, 0.53, 0.53)
		for _, gene := range genes {
			x, y := r.toPixel(l.Positions[gene], l.Config)
			dc.SetRGB(cr, cg, cb)
			dc.DrawCircle(x, y, rad)
			dc.Fill()
			dc.SetRGB(1, 1, 1)
			dc.SetLineWidth(r.pt(0.6))
			dc.DrawCircle(x, y, rad)
			dc.Stroke()
		}
	}
}

// drawMiRNANodes draws the large per-miRNA markers on the outer ring.
func (r *renderer) drawMiRNANodes(dc *gg.Context, l layout.Layout) {
	rad := r.pt(r.style.MiRNANodeRadius)
	for _, mir := range l.MiRNAs {
		hex, ok := l.Colors[mir]
		if !ok {
			hex = r.style.FallbackColor
		}
		cr, cg, cb := hexToRGB(hex, 0.53, 0.53, 0.53)
		x, y := r.toPixel(l.Positions[mir], l.Config)
		dc.SetRGB(cr, cg, cb)
		dc.DrawCircle(x, y, rad)
		dc.Fill()
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(r.pt(1.2))
		dc.DrawCircle(x, y, rad)
		dc.Stroke()
	}
}

// drawLabels writes every node identifier centered on its marker: miRNAs
// bold and larger, genes smaller, both with a light halo for legibility over
// the edge lines.
func (r *renderer) drawLabels(dc *gg.Context, l layout.Layout) error {
	mirFace, err := boldFace(r.pt(r.style.MiRNAFontSize))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "load miRNA label font")
	}
	geneFace, err := regularFace(r.pt(r.style.GeneFontSize))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "load gene label font")
	}

	for _, mir := range l.MiRNAs {
		x, y := r.toPixel(l.Positions[mir], l.Config)
		r.haloText(dc, mirFace, mir, x, y)
	}
	for _, cat := range netmap.Categories() {
		for _, gene := range l.Genes[cat] {
			x, y := r.toPixel(l.Positions[gene], l.Config)
			r.haloText(dc, geneFace, gene, x, y)
		}
	}
	return nil
}

// haloText draws s centered at (x, y) with a white outline stroke under the
// black fill.
func (r *renderer) haloText(dc *gg.Context, face font.Face, s string, x, y float64) {
	dc.SetFontFace(face)
	o := r.pt(0.7)
	dc.SetRGBA(1, 1, 1, 0.9)
	for _, dx := range []float64{-o, 0, o} {
		for _, dy := range []float64{-o, 0, o} {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawStringAnchored(s, x+dx, y+dy, 0.5, 0.5)
		}
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// =============================================================================
// Legends
// =============================================================================

// legendEntry is one swatch+label pair in a legend row.
type legendEntry struct {
	color string
	label string
}

// drawLegends renders the two legends below the plot square: first the
// miRNA→color mapping, then the category→color mapping. Rows are centered
// horizontally and never overlap the plot.
func (r *renderer) drawLegends(dc *gg.Context, l layout.Layout) error {
	face, err := regularFace(r.pt(r.style.LegendFontSize))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "load legend font")
	}
	dc.SetFontFace(face)

	var mirEntries []legendEntry
	for _, mir := range l.MiRNAs {
		hex, ok := l.Colors[mir]
		if !ok {
			hex = r.style.FallbackColor
		}
		mirEntries = append(mirEntries, legendEntry{color: hex, label: mir})
	}

	catEntries := []legendEntry{
		{color: r.style.RingColors[netmap.CategoryPair], label: "Shared by 2 miRNAs"},
		{color: r.style.RingColors[netmap.CategoryTriple], label: "Shared by 3 miRNAs"},
		{color: r.style.RingColors[netmap.CategoryMany], label: "Shared by ≥4 miRNAs"},
	}

	y := float64(r.width) + r.pt(20)
	rowHeight := r.pt(16)

	// miRNA legend, up to 5 entries per row.
	const perRow = 5
	for start := 0; start < len(mirEntries); start += perRow {
		end := start + perRow
		if end > len(mirEntries) {
			end = len(mirEntries)
		}
		r.drawLegendRow(dc, mirEntries[start:end], y)
		y += rowHeight
	}

	// Category legend on its own row, separated from the miRNA rows.
	y += rowHeight / 2
	r.drawLegendRow(dc, catEntries, y)
	return nil
}

// drawLegendRow draws one centered row of swatch+label entries at baseline y.
func (r *renderer) drawLegendRow(dc *gg.Context, entries []legendEntry, y float64) {
	swatch := r.pt(10)
	pad := r.pt(4)
	gap := r.pt(14)

	total := 0.0
	widths := make([]float64, len(entries))
	for i, e := range entries {
		w, _ := dc.MeasureString(e.label)
		widths[i] = swatch + pad + w
		total += widths[i]
	}
	total += gap * float64(len(entries)-1)

	x := (float64(r.width) - total) / 2
	for i, e := range entries {
		cr, cg, cb := hexToRGB(e.color, 0.53, 0.53, 0.53)
		dc.SetRGB(cr, cg, cb)
		dc.DrawRectangle(x, y-swatch/2, swatch, swatch)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.label, x+swatch+pad, y, 0, 0.35)

		x += widths[i] + gap
	}
}

// =============================================================================
// Colors
// =============================================================================

// hexToRGB parses a #RRGGBB color into 0..1 components, returning the given
// fallback components when the string is malformed.
func hexToRGB(s string, fr, fg, fb float64) (float64, float64, float64) {
	if len(s) != 7 || s[0] != '#' {
		return fr, fg, fb
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fr, fg, fb
	}
	return float64(v>>16&0xFF) / 255, float64(v>>8&0xFF) / 255, float64(v&0xFF) / 255
}
