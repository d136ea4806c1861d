package render

import "github.com/mirnatools/targetnets/pkg/netmap"

// Style controls the visual appearance of a rendered network. Sizes are in
// points at the reference figure size (11 inches wide); the renderer scales
// them to the actual canvas, so the same style produces proportionally
// identical images at any resolution.
type Style struct {
	// RingColors fills gene nodes and the category legend swatches.
	RingColors map[netmap.Category]string

	// EdgeWidths selects the line width per sharing category, thicker for
	// higher-sharing categories.
	EdgeWidths map[netmap.Category]float64

	// EdgeAlpha is the edge line opacity (0..1).
	EdgeAlpha float64

	// Node marker radii. MiRNA markers are the large outer-ring dots; gene
	// markers are the small ring dots.
	MiRNANodeRadius float64
	GeneNodeRadius  float64

	// Font sizes.
	TitleFontSize  float64
	MiRNAFontSize  float64
	GeneFontSize   float64
	LegendFontSize float64

	// FallbackColor is used for any miRNA without a palette assignment.
	FallbackColor string

	// GuideColor strokes the faint dashed ring guides.
	GuideColor string
}

// DefaultStyle returns the stock appearance: green/yellow/orange ring
// colors, edge widths 0.5/0.9/1.4pt, 75% edge opacity.
func DefaultStyle() Style {
	return Style{
		RingColors: map[netmap.Category]string{
			netmap.CategoryPair:   "#78C679",
			netmap.CategoryTriple: "#FDDC6C",
			netmap.CategoryMany:   "#F16913",
		},
		EdgeWidths: map[netmap.Category]float64{
			netmap.CategoryPair:   0.5,
			netmap.CategoryTriple: 0.9,
			netmap.CategoryMany:   1.4,
		},
		EdgeAlpha:       0.75,
		MiRNANodeRadius: 17.4, // marker area 950pt²
		GeneNodeRadius:  7.1,  // marker area 160pt²
		TitleFontSize:   18,
		MiRNAFontSize:   9.5,
		GeneFontSize:    7.2,
		LegendFontSize:  9,
		FallbackColor:   "#888888",
		GuideColor:      "#D3D3D3",
	}
}
