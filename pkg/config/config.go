// Package config defines the run configuration for targetnets.
//
// All tunables (input/output file names, per-set titles and palettes, ring
// geometry, and visual style) live in an explicit Config value with
// documented defaults. A TOML file can override any subset of them, which
// keeps the defaults testable and lets analyses inject alternate palettes
// or radii without code changes.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mirnatools/targetnets/pkg/errors"
	"github.com/mirnatools/targetnets/pkg/layout"
	"github.com/mirnatools/targetnets/pkg/netmap"
	"github.com/mirnatools/targetnets/pkg/render"
)

// DefaultFile is the config file name looked up in the working directory
// when no --config flag is given.
const DefaultFile = "targetnets.toml"

// Set configures one analysis set (up-regulated or down-regulated miRNAs).
type Set struct {
	// Input is the target table workbook (.xlsx or .csv).
	Input string `toml:"input"`

	// Output is the rendered PNG path.
	Output string `toml:"output"`

	// Title is drawn bold at the top left of the figure.
	Title string `toml:"title"`

	// Palette is the ordered miRNA color list, consumed in
	// first-appearance order. With more miRNAs than colors, assignment
	// wraps around and the run logs a warning.
	Palette []string `toml:"palette"`
}

// Geometry configures the circular layout radii.
type Geometry struct {
	// OuterRadius is the miRNA ring, always outermost.
	OuterRadius float64 `toml:"outer_radius"`

	// Rings maps category names ("2", "3", "4+") to gene ring radii.
	Rings map[string]float64 `toml:"rings"`
}

// Style configures the visual appearance.
type Style struct {
	// RingColors maps category names to gene node / legend swatch colors.
	RingColors map[string]string `toml:"ring_colors"`

	// EdgeWidths maps category names to line widths in points.
	EdgeWidths map[string]float64 `toml:"edge_widths"`

	// EdgeAlpha is the edge opacity in [0, 1].
	EdgeAlpha float64 `toml:"edge_alpha"`
}

// Image configures the output canvas.
type Image struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config is the full run configuration.
type Config struct {
	Up       Set      `toml:"up"`
	Down     Set      `toml:"down"`
	Geometry Geometry `toml:"geometry"`
	Style    Style    `toml:"style"`
	Image    Image    `toml:"image"`
}

// Default returns the stock configuration: the conventional file names,
// the warm palette for up-regulated and the cool palette for down-regulated
// miRNAs, radii 5.2/3.8/2.3/1.1, and an 11-inch 300 dpi canvas.
func Default() Config {
	style := render.DefaultStyle()
	return Config{
		Up: Set{
			Input:  "metascapemiRNAsup.xlsx",
			Output: "network_up_alllabels.png",
			Title:  "A) Upregulated miRNAs",
			Palette: []string{
				"#D73027", "#FC8D59", "#F46D43", "#FDAE61",
				"#FEE090", "#E6550D", "#A63603",
			},
		},
		Down: Set{
			Input:  "metascapemiRNAsdown.xlsx",
			Output: "network_down_alllabels.png",
			Title:  "B) Downregulated miRNAs",
			Palette: []string{
				"#4575B4", "#74ADD1", "#3288BD", "#ABD9E9",
				"#5E4FA2", "#1F78B4", "#084594",
			},
		},
		Geometry: Geometry{
			OuterRadius: 5.2,
			Rings: map[string]float64{
				"2":  3.8,
				"3":  2.3,
				"4+": 1.1,
			},
		},
		Style: Style{
			RingColors: map[string]string{
				"2":  style.RingColors[netmap.CategoryPair],
				"3":  style.RingColors[netmap.CategoryTriple],
				"4+": style.RingColors[netmap.CategoryMany],
			},
			EdgeWidths: map[string]float64{
				"2":  style.EdgeWidths[netmap.CategoryPair],
				"3":  style.EdgeWidths[netmap.CategoryTriple],
				"4+": style.EdgeWidths[netmap.CategoryMany],
			},
			EdgeAlpha: style.EdgeAlpha,
		},
		Image: Image{
			Width:  render.DefaultWidth,
			Height: render.DefaultHeight,
		},
	}
}

// Load reads a TOML config file layered over Default, so partial files
// override only what they name. With an empty path, DefaultFile is used if
// it exists; otherwise the defaults are returned unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return Default(), nil
		}
		path = DefaultFile
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot work
// with. It is called by Load; callers constructing a Config by hand should
// call it themselves.
func (c Config) Validate() error {
	for _, set := range []struct {
		name string
		set  Set
	}{{"up", c.Up}, {"down", c.Down}} {
		if set.set.Input == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s.input must not be empty", set.name)
		}
		if set.set.Output == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s.output must not be empty", set.name)
		}
		if len(set.set.Palette) == 0 {
			return errors.New(errors.ErrCodeInvalidPalette, "%s.palette must list at least one color", set.name)
		}
	}

	if c.Geometry.OuterRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "geometry.outer_radius must be positive")
	}
	for name, r := range c.Geometry.Rings {
		if !validCategory(name) {
			return errors.New(errors.ErrCodeInvalidConfig, "geometry.rings: unknown category %q", name)
		}
		if r <= 0 || r >= c.Geometry.OuterRadius {
			return errors.New(errors.ErrCodeInvalidConfig, "geometry.rings[%s] must be in (0, outer_radius)", name)
		}
	}
	for name := range c.Style.RingColors {
		if !validCategory(name) {
			return errors.New(errors.ErrCodeInvalidConfig, "style.ring_colors: unknown category %q", name)
		}
	}
	for name := range c.Style.EdgeWidths {
		if !validCategory(name) {
			return errors.New(errors.ErrCodeInvalidConfig, "style.edge_widths: unknown category %q", name)
		}
	}
	if c.Style.EdgeAlpha < 0 || c.Style.EdgeAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "style.edge_alpha must be in [0, 1]")
	}
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "image.width and image.height must be positive")
	}
	return nil
}

// LayoutConfig converts the geometry section into the layout package's form.
func (c Config) LayoutConfig() layout.Config {
	rings := make(map[netmap.Category]float64, len(c.Geometry.Rings))
	for name, r := range c.Geometry.Rings {
		rings[netmap.Category(name)] = r
	}
	return layout.Config{OuterRadius: c.Geometry.OuterRadius, Rings: rings}
}

// RenderStyle converts the style section into the render package's form,
// falling back to render defaults for anything unset.
func (c Config) RenderStyle() render.Style {
	s := render.DefaultStyle()
	for name, hex := range c.Style.RingColors {
		s.RingColors[netmap.Category(name)] = hex
	}
	for name, w := range c.Style.EdgeWidths {
		s.EdgeWidths[netmap.Category(name)] = w
	}
	if c.Style.EdgeAlpha > 0 {
		s.EdgeAlpha = c.Style.EdgeAlpha
	}
	return s
}

func validCategory(name string) bool {
	for _, cat := range netmap.Categories() {
		if string(cat) == name {
			return true
		}
	}
	return false
}
