package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirnatools/targetnets/pkg/errors"
	"github.com/mirnatools/targetnets/pkg/netmap"
	"github.com/mirnatools/targetnets/pkg/table"
)

// edgesCommand extracts a categorized edge list from a workbook without
// rendering it.
func (c *CLI) edgesCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "edges [workbook]",
		Short: "Extract shared-target edges from a workbook",
		Long: `Reads a per-miRNA target spreadsheet (.xlsx or .csv), keeps genes
targeted by at least two miRNAs, and writes the categorized edge list
as JSON or CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdges(args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <workbook>.edges.<format>)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")

	return cmd
}

func (c *CLI) runEdges(input, output, format string) error {
	if format != "json" && format != "csv" {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported edge format %q (use json or csv)", format)
	}
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + ".edges." + format
	}

	t, err := table.Load(input)
	if err != nil {
		return err
	}
	edges := netmap.Build(table.Clean(t))

	c.Logger.Info("edge list built", "input", input, "edges", len(edges))

	switch format {
	case "json":
		if err := netmap.WriteFile(edges, output); err != nil {
			return err
		}
	case "csv":
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "creating %s", output)
		}
		defer f.Close()
		if err := netmap.WriteCSV(edges, f); err != nil {
			return err
		}
	}

	printSuccess("wrote %d edges", len(edges))
	printFile(output)
	printStats(len(netmap.MiRNAs(edges)), len(netmap.Genes(edges)), len(edges), false)
	if format == "json" {
		printNextStep(fmt.Sprintf("%s render %s", appName, output))
	}
	return nil
}
