// Package table loads and cleans the per-miRNA target tables that drive the
// network builder.
//
// An input workbook has one column per miRNA: the header cell carries the
// miRNA identifier and the cells below it list that miRNA's target genes.
// Rows carry no alignment semantics across columns; each column's non-empty
// cells simply form that miRNA's target list. Supported formats are .xlsx
// (first sheet) and .csv.
//
// Loading returns the raw table; Clean applies the whitespace and empty
// row/column rules the downstream packages assume.
package table

import (
	"path/filepath"
	"strings"

	"github.com/mirnatools/targetnets/pkg/errors"
)

// Column is one miRNA column: the header name and the cell values below it,
// in row order. Cells may be empty; Clean preserves the relative order of
// the non-empty ones.
type Column struct {
	Name  string
	Cells []string
}

// Table is an ordered set of miRNA columns. Column order matches the
// workbook; downstream iteration order depends on it, so it is never sorted.
type Table struct {
	Columns []Column
}

// Load reads a target table from path. The format is chosen by extension:
// .xlsx (first sheet) or .csv. The returned table is raw; callers pass it
// through Clean before handing it to the edge builder.
func Load(path string) (Table, error) {
	data, err := ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes raw workbook bytes. ext selects the decoder (".xlsx" or
// ".csv", case-insensitive).
func Parse(data []byte, ext string) (Table, error) {
	switch strings.ToLower(ext) {
	case ".xlsx":
		return parseXLSX(data)
	case ".csv":
		return parseCSV(data)
	default:
		return Table{}, errors.New(errors.ErrCodeUnsupported, "unsupported table format %q (want .xlsx or .csv)", ext)
	}
}

// Clean applies the cleaning rules the core packages assume:
//
//  1. trim leading/trailing whitespace from every cell and header
//  2. drop rows that are entirely empty
//  3. drop columns that are entirely empty (no header and no values)
//
// Surviving columns and cells keep their relative order. Clean is
// idempotent.
func Clean(t Table) Table {
	cols := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		cells := make([]string, 0, len(c.Cells))
		for _, cell := range c.Cells {
			cells = append(cells, strings.TrimSpace(cell))
		}
		cols = append(cols, Column{Name: name, Cells: cells})
	}

	cols = dropEmptyRows(cols)

	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Name == "" && countNonEmpty(c.Cells) == 0 {
			continue
		}
		out = append(out, c)
	}
	return Table{Columns: out}
}

// dropEmptyRows removes row indices where every column's cell is empty.
// Columns may have ragged lengths; a missing cell counts as empty.
func dropEmptyRows(cols []Column) []Column {
	maxRows := 0
	for _, c := range cols {
		if len(c.Cells) > maxRows {
			maxRows = len(c.Cells)
		}
	}

	keep := make([]bool, maxRows)
	for _, c := range cols {
		for i, cell := range c.Cells {
			if cell != "" {
				keep[i] = true
			}
		}
	}

	out := make([]Column, len(cols))
	for i, c := range cols {
		cells := make([]string, 0, len(c.Cells))
		for j, cell := range c.Cells {
			if keep[j] {
				cells = append(cells, cell)
			}
		}
		out[i] = Column{Name: c.Name, Cells: cells}
	}
	return out
}

func countNonEmpty(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}

// fromRows converts row-major records (header row first) into a Table.
// Short rows are padded so every column sees the same row count.
func fromRows(rows [][]string) Table {
	if len(rows) == 0 {
		return Table{}
	}

	header := rows[0]
	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Cells: make([]string, 0, len(rows)-1)}
	}

	for _, row := range rows[1:] {
		for i := range cols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cols[i].Cells = append(cols[i].Cells, cell)
		}
	}
	return Table{Columns: cols}
}
