package netmap

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// edgeList is the canonical serialization format for edge lists. The JSON
// form is used as the staged-pipeline handoff between the edges and render
// commands; the CSV form (miRNA, Gene, Category) is for external tools.
type edgeList struct {
	Edges []Edge `json:"edges"`
}

// Marshal converts an edge list to indented JSON bytes.
func Marshal(edges []Edge) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(edges, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into an edge list.
func Unmarshal(data []byte) ([]Edge, error) {
	return readJSON(bytes.NewReader(data))
}

// WriteFile writes an edge list as JSON to path.
// The file is created with 0644 permissions.
func WriteFile(edges []Edge, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(edges, f)
}

// ReadFile reads a JSON edge-list file written by WriteFile.
func ReadFile(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readJSON(f)
}

// WriteCSV writes the edge list as CSV with the header miRNA,Gene,Category.
// An empty edge list still produces the header row.
func WriteCSV(edges []Edge, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"miRNA", "Gene", "Category"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range edges {
		if err := cw.Write([]string{e.MiRNA, e.Gene, string(e.Category)}); err != nil {
			return fmt.Errorf("write edge %s→%s: %w", e.MiRNA, e.Gene, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(edges []Edge, w io.Writer) error {
	if edges == nil {
		edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(edgeList{Edges: edges}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readJSON(r io.Reader) ([]Edge, error) {
	var data edgeList
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Edges == nil {
		data.Edges = []Edge{}
	}
	for _, e := range data.Edges {
		switch e.Category {
		case CategoryPair, CategoryTriple, CategoryMany:
		default:
			return nil, fmt.Errorf("edge %s→%s: unknown category %q", e.MiRNA, e.Gene, e.Category)
		}
	}
	return data.Edges, nil
}
