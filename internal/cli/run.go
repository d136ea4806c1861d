package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mirnatools/targetnets/pkg/config"
	"github.com/mirnatools/targetnets/pkg/pipeline"
)

// runAll renders both configured sets and reports the output paths.
func (c *CLI) runAll(ctx context.Context, configPath string, noCache, refresh bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	sets := []struct {
		name string
		set  config.Set
	}{
		{"up", cfg.Up},
		{"down", cfg.Down},
	}

	outputs := make([]string, 0, len(sets))
	for _, s := range sets {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s network from %s...", s.name, s.set.Input))
		spinner.Start()

		result, err := runner.Execute(ctx, pipeline.Options{
			Input:   s.set.Input,
			Output:  s.set.Output,
			Title:   s.set.Title,
			Palette: s.set.Palette,
			Layout:  cfg.LayoutConfig(),
			Style:   cfg.RenderStyle(),
			Width:   cfg.Image.Width,
			Height:  cfg.Image.Height,
			Refresh: refresh,
			Logger:  c.Logger,
		})
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("%s set failed", s.name))
			return fmt.Errorf("%s set: %w", s.name, err)
		}
		if err := result.WriteFile(s.set.Output); err != nil {
			spinner.StopWithError(fmt.Sprintf("%s set failed", s.name))
			return fmt.Errorf("%s set: %w", s.name, err)
		}
		spinner.Stop()

		printStats(result.MiRNAs, result.Genes, result.Edges, result.CacheHit)
		printFile(s.set.Output)
		if result.PaletteWrapped {
			printWarning("%s palette has fewer colors than miRNAs, colors repeat", s.name)
		}
		outputs = append(outputs, s.set.Output)
	}

	printSuccess("OK -> %s", strings.Join(outputs, ", "))
	return nil
}
