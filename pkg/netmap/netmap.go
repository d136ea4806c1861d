// Package netmap builds the shared-target network from a cleaned miRNA
// target table.
//
// Each column of the input table is a miRNA and its non-empty cells are that
// miRNA's target genes. Build converts the table into an edge list keeping
// only genes targeted by at least two distinct miRNAs, and labels every edge
// with the gene's sharing category ("2", "3", or "4+").
//
// The builder is deterministic: edges follow the table's column order and,
// within a column, its cell order. No sorting is introduced anywhere, so the
// same table always yields the same edge list.
package netmap

import "github.com/mirnatools/targetnets/pkg/table"

// Category is the sharing-degree bucket assigned to a shared gene, derived
// from the number of distinct miRNAs targeting it.
type Category string

// Sharing categories, from least to most shared.
const (
	CategoryPair   Category = "2"
	CategoryTriple Category = "3"
	CategoryMany   Category = "4+"
)

// Categories returns the fixed category order used for ring placement and
// legends: least-shared first (outermost gene ring), most-shared last
// (innermost ring).
func Categories() []Category {
	return []Category{CategoryPair, CategoryTriple, CategoryMany}
}

// categoryFor maps a distinct-miRNA count to its category. Counts below 2
// never reach this function; Build filters them first.
func categoryFor(count int) Category {
	switch {
	case count == 2:
		return CategoryPair
	case count == 3:
		return CategoryTriple
	default:
		return CategoryMany
	}
}

// Edge is one miRNA→gene targeting relation. Category is a property of the
// gene (how many distinct miRNAs target it), repeated on every edge so the
// renderer can pick line widths without a lookup.
type Edge struct {
	MiRNA    string   `json:"mirna"`
	Gene     string   `json:"gene"`
	Category Category `json:"category"`
}

// Build converts a cleaned table into the shared-target edge list:
//
//  1. Emit a candidate edge for every (column, non-empty cell) pair, in
//     table order. Duplicate (miRNA, gene) pairs within one column are
//     preserved; the builder counts occurrences, not sets.
//  2. Count the distinct miRNAs targeting each gene over all candidates.
//  3. Keep only edges whose gene is targeted by >= 2 distinct miRNAs
//     (stable filter, no reordering).
//  4. Label each kept edge with the gene's category.
//
// An input with no columns, or one where no gene is shared, yields an empty
// (non-nil) slice; that is a valid result, not an error.
func Build(t table.Table) []Edge {
	type candidate struct {
		mirna string
		gene  string
	}

	var candidates []candidate
	for _, col := range t.Columns {
		for _, cell := range col.Cells {
			if cell == "" {
				continue
			}
			candidates = append(candidates, candidate{mirna: col.Name, gene: cell})
		}
	}

	// Distinct miRNAs per gene. Only counts matter here; all ordering comes
	// from the candidate slice.
	targeting := make(map[string]map[string]struct{})
	for _, c := range candidates {
		set, ok := targeting[c.gene]
		if !ok {
			set = make(map[string]struct{})
			targeting[c.gene] = set
		}
		set[c.mirna] = struct{}{}
	}

	edges := make([]Edge, 0, len(candidates))
	for _, c := range candidates {
		count := len(targeting[c.gene])
		if count < 2 {
			continue
		}
		edges = append(edges, Edge{MiRNA: c.mirna, Gene: c.gene, Category: categoryFor(count)})
	}
	return edges
}

// MiRNAs returns the distinct miRNAs of an edge list in first-appearance
// order. Color assignment and outer-ring placement both follow this order.
func MiRNAs(edges []Edge) []string {
	seen := make(map[string]struct{}, len(edges))
	var out []string
	for _, e := range edges {
		if _, ok := seen[e.MiRNA]; ok {
			continue
		}
		seen[e.MiRNA] = struct{}{}
		out = append(out, e.MiRNA)
	}
	return out
}

// GenesByCategory returns each category's distinct genes in first-appearance
// order. Categories with no genes are absent from the map; callers iterate
// via Categories() for a fixed order.
func GenesByCategory(edges []Edge) map[Category][]string {
	seen := make(map[string]struct{}, len(edges))
	out := make(map[Category][]string)
	for _, e := range edges {
		if _, ok := seen[e.Gene]; ok {
			continue
		}
		seen[e.Gene] = struct{}{}
		out[e.Category] = append(out[e.Category], e.Gene)
	}
	return out
}

// Genes returns the distinct genes of an edge list in first-appearance
// order, across all categories.
func Genes(edges []Edge) []string {
	seen := make(map[string]struct{}, len(edges))
	var out []string
	for _, e := range edges {
		if _, ok := seen[e.Gene]; ok {
			continue
		}
		seen[e.Gene] = struct{}{}
		out = append(out, e.Gene)
	}
	return out
}
