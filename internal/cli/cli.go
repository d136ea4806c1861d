package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mirnatools/targetnets/pkg/buildinfo"
	"github.com/mirnatools/targetnets/pkg/cache"
	"github.com/mirnatools/targetnets/pkg/pipeline"
)

const appName = "targetnets"

// CLI bundles the shared state used by all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel adjusts the logger level after construction.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root command with all subcommands attached.
// Running it without a subcommand renders both miRNA sets from the
// active configuration.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		configPath string
		noCache    bool
		refresh    bool
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Render shared-target miRNA networks from target spreadsheets",
		Long: `targetnets converts per-miRNA target spreadsheets into categorized
shared-target edge lists and renders each as an annotated circular
network image.

Without a subcommand it processes both the upregulated and the
downregulated set from the configuration file and writes one PNG per
set.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAll(cmd.Context(), configPath, noCache, refresh)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML configuration (default: targetnets.toml if present)")
	root.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	root.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached artifact exists")

	root.AddCommand(c.edgesCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner wires a pipeline runner with the file cache unless caching
// is disabled.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	if noCache {
		return pipeline.NewRunner(cache.NewNullCache(), c.Logger), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "error", err)
		return pipeline.NewRunner(cache.NewNullCache(), c.Logger), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "error", err)
		return pipeline.NewRunner(cache.NewNullCache(), c.Logger), nil
	}
	return pipeline.NewRunner(fc, c.Logger), nil
}

// cacheDir resolves the per-user cache directory, honoring
// XDG_CACHE_HOME when set.
func cacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
