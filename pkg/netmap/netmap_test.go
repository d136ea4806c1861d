package netmap

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mirnatools/targetnets/pkg/table"
)

func col(name string, cells ...string) table.Column {
	return table.Column{Name: name, Cells: cells}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		in   table.Table
		want []Edge
	}{
		{
			name: "Empty",
			in:   table.Table{},
			want: []Edge{},
		},
		{
			name: "SingleColumnSingleGene",
			in:   table.Table{Columns: []table.Column{col("miR-1", "G1")}},
			want: []Edge{},
		},
		{
			// G1 under miR-1 and miR-2,
			// G2 under all three, G3 only under miR-1.
			name: "SharedAcrossThree",
			in: table.Table{Columns: []table.Column{
				col("miR-1", "G1", "G2", "G3"),
				col("miR-2", "G1", "G2"),
				col("miR-3", "G2"),
			}},
			want: []Edge{
				{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
				{MiRNA: "miR-1", Gene: "G2", Category: CategoryTriple},
				{MiRNA: "miR-2", Gene: "G1", Category: CategoryPair},
				{MiRNA: "miR-2", Gene: "G2", Category: CategoryTriple},
				{MiRNA: "miR-3", Gene: "G2", Category: CategoryTriple},
			},
		},
		{
			name: "FourSharersGetManyCategory",
			in: table.Table{Columns: []table.Column{
				col("miR-1", "G"),
				col("miR-2", "G"),
				col("miR-3", "G"),
				col("miR-4", "G"),
			}},
			want: []Edge{
				{MiRNA: "miR-1", Gene: "G", Category: CategoryMany},
				{MiRNA: "miR-2", Gene: "G", Category: CategoryMany},
				{MiRNA: "miR-3", Gene: "G", Category: CategoryMany},
				{MiRNA: "miR-4", Gene: "G", Category: CategoryMany},
			},
		},
		{
			// Repeated cells in one column count once for sharing but keep
			// both edges (raw occurrence semantics, not set semantics).
			name: "DuplicateWithinColumnPreserved",
			in: table.Table{Columns: []table.Column{
				col("miR-1", "G1", "G1"),
				col("miR-2", "G1"),
			}},
			want: []Edge{
				{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
				{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
				{MiRNA: "miR-2", Gene: "G1", Category: CategoryPair},
			},
		},
		{
			name: "EmptyCellsSkipped",
			in: table.Table{Columns: []table.Column{
				col("miR-1", "G1", "", "G2"),
				col("miR-2", "", "G1", ""),
			}},
			want: []Edge{
				{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
				{MiRNA: "miR-2", Gene: "G1", Category: CategoryPair},
			},
		},
		{
			name: "ColumnsWithNoSharing",
			in: table.Table{Columns: []table.Column{
				col("miR-1", "A", "B"),
				col("miR-2", "C", "D"),
			}},
			want: []Edge{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.in)
			if got == nil {
				t.Fatal("Build must return a non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}

			// Idempotence: same table, same edges, same order.
			again := Build(tt.in)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("second Build() = %+v, want %+v", again, got)
			}
		})
	}
}

func TestBuildEveryGeneSharedByAtLeastTwo(t *testing.T) {
	in := table.Table{Columns: []table.Column{
		col("miR-1", "G1", "G2", "G3", "G4"),
		col("miR-2", "G2", "G4"),
		col("miR-3", "G4", "G1"),
	}}

	edges := Build(in)
	counts := make(map[string]map[string]struct{})
	for _, e := range edges {
		if counts[e.Gene] == nil {
			counts[e.Gene] = make(map[string]struct{})
		}
		counts[e.Gene][e.MiRNA] = struct{}{}
	}
	for gene, mirnas := range counts {
		if len(mirnas) < 2 {
			t.Errorf("gene %s has %d distinct miRNAs in output, want >= 2", gene, len(mirnas))
		}
	}

	// Every gene that is shared in the input appears once per targeting miRNA.
	for _, want := range []Edge{
		{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-3", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-2", Gene: "G4", Category: CategoryTriple},
	} {
		found := false
		for _, e := range edges {
			if e == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected edge %+v in output", want)
		}
	}

	// G3 is targeted only by miR-1 and must be absent entirely.
	for _, e := range edges {
		if e.Gene == "G3" {
			t.Errorf("gene G3 (count 1) must not appear, got edge %+v", e)
		}
	}
}

func TestMiRNAsFirstAppearanceOrder(t *testing.T) {
	edges := []Edge{
		{MiRNA: "miR-9", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-9", Gene: "G2", Category: CategoryPair},
		{MiRNA: "miR-5", Gene: "G2", Category: CategoryPair},
	}

	got := MiRNAs(edges)
	want := []string{"miR-9", "miR-1", "miR-5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MiRNAs = %v, want %v", got, want)
	}
}

func TestGenesByCategory(t *testing.T) {
	edges := []Edge{
		{MiRNA: "miR-1", Gene: "G2", Category: CategoryTriple},
		{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-2", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-2", Gene: "G3", Category: CategoryPair},
	}

	got := GenesByCategory(edges)
	if want := []string{"G1", "G3"}; !reflect.DeepEqual(got[CategoryPair], want) {
		t.Errorf("pair genes = %v, want %v", got[CategoryPair], want)
	}
	if want := []string{"G2"}; !reflect.DeepEqual(got[CategoryTriple], want) {
		t.Errorf("triple genes = %v, want %v", got[CategoryTriple], want)
	}
	if _, ok := got[CategoryMany]; ok {
		t.Error("empty category should be absent from the map")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	edges := []Edge{
		{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-1", Gene: "G2", Category: CategoryMany},
	}

	data, err := Marshal(edges)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, edges) {
		t.Errorf("round trip = %+v, want %+v", got, edges)
	}
}

func TestJSONEmptyEdgeList(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("round trip of empty list = %v, want empty non-nil slice", got)
	}
}

func TestUnmarshalRejectsUnknownCategory(t *testing.T) {
	_, err := Unmarshal([]byte(`{"edges":[{"mirna":"m","gene":"g","category":"5"}]}`))
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	edges := []Edge{
		{MiRNA: "miR-1", Gene: "G1", Category: CategoryPair},
		{MiRNA: "miR-2", Gene: "G1", Category: CategoryPair},
	}
	if err := WriteCSV(edges, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"miRNA,Gene,Category", "miR-1,G1,2", "miR-2,G1,2"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("csv = %v, want %v", lines, want)
	}
}

func TestWriteCSVEmptyKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(nil, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "miRNA,Gene,Category" {
		t.Errorf("csv = %q, want header only", got)
	}
}
