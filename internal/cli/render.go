package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirnatools/targetnets/pkg/config"
	"github.com/mirnatools/targetnets/pkg/errors"
	"github.com/mirnatools/targetnets/pkg/layout"
	"github.com/mirnatools/targetnets/pkg/netmap"
	"github.com/mirnatools/targetnets/pkg/render"
)

// renderCommand draws a previously extracted edge list as a circular
// network PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		output     string
		title      string
		paletteSet string
	)

	cmd := &cobra.Command{
		Use:   "render [edges.json]",
		Short: "Render an edge list as a circular network PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], configPath, output, title, paletteSet)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML configuration (default: targetnets.toml if present)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: <edges>.png)")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default: title of the chosen set)")
	cmd.Flags().StringVar(&paletteSet, "palette", "up", "palette set to use: up or down")

	return cmd
}

func (c *CLI) runRender(input, configPath, output, title, paletteSet string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var set config.Set
	switch paletteSet {
	case "up":
		set = cfg.Up
	case "down":
		set = cfg.Down
	default:
		return errors.New(errors.ErrCodeInvalidPalette, "unknown palette set %q (use up or down)", paletteSet)
	}
	if title == "" {
		title = set.Title
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}

	edges, err := netmap.ReadFile(input)
	if err != nil {
		return err
	}

	l := layout.Compute(edges, set.Palette, cfg.LayoutConfig())
	if l.PaletteWrapped {
		printWarning("palette has fewer colors than miRNAs, colors repeat")
	}

	png, err := render.PNG(l, edges,
		render.WithTitle(title),
		render.WithStyle(cfg.RenderStyle()),
		render.WithSize(cfg.Image.Width, cfg.Image.Height),
	)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, png, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "writing %s", output)
	}

	c.Logger.Info("network rendered", "edges", len(edges), "output", output)
	printSuccess("rendered %d edges", len(edges))
	printFile(output)
	return nil
}
