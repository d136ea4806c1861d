package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/mirnatools/targetnets/pkg/netmap"
)

const tolerance = 1e-9

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func pairEdges(mirnas ...string) []netmap.Edge {
	edges := make([]netmap.Edge, 0, len(mirnas))
	for _, m := range mirnas {
		edges = append(edges, netmap.Edge{MiRNA: m, Gene: "G1", Category: netmap.CategoryPair})
	}
	return edges
}

func TestComputeMiRNAAngles(t *testing.T) {
	cfg := DefaultConfig()
	edges := pairEdges("miR-1", "miR-2", "miR-3", "miR-4")

	l := Compute(edges, []string{"#111111", "#222222", "#333333", "#444444"}, cfg)

	n := len(l.MiRNAs)
	if n != 4 {
		t.Fatalf("MiRNAs = %v, want 4 entries", l.MiRNAs)
	}
	for k, mir := range l.MiRNAs {
		theta := 2 * math.Pi * float64(k) / float64(n)
		want := Point{X: math.Cos(theta) * cfg.OuterRadius, Y: math.Sin(theta) * cfg.OuterRadius}
		if got := l.Positions[mir]; !almostEqual(got, want) {
			t.Errorf("position[%s] = %+v, want %+v", mir, got, want)
		}
	}

	// First miRNA sits exactly at angle 0 on the outer radius.
	if got := l.Positions[l.MiRNAs[0]]; !almostEqual(got, Point{X: cfg.OuterRadius, Y: 0}) {
		t.Errorf("first miRNA at %+v, want (%v, 0)", got, cfg.OuterRadius)
	}
}

func TestComputeGeneRings(t *testing.T) {
	cfg := DefaultConfig()
	edges := []netmap.Edge{
		{MiRNA: "miR-1", Gene: "P1", Category: netmap.CategoryPair},
		{MiRNA: "miR-2", Gene: "P1", Category: netmap.CategoryPair},
		{MiRNA: "miR-1", Gene: "P2", Category: netmap.CategoryPair},
		{MiRNA: "miR-2", Gene: "P2", Category: netmap.CategoryPair},
		{MiRNA: "miR-1", Gene: "T1", Category: netmap.CategoryTriple},
		{MiRNA: "miR-2", Gene: "T1", Category: netmap.CategoryTriple},
		{MiRNA: "miR-3", Gene: "T1", Category: netmap.CategoryTriple},
	}

	l := Compute(edges, []string{"#a", "#b", "#c"}, cfg)

	// Pair-category genes on the 3.8 ring, evenly spaced.
	for i, gene := range []string{"P1", "P2"} {
		theta := 2 * math.Pi * float64(i) / 2
		want := Point{X: math.Cos(theta) * 3.8, Y: math.Sin(theta) * 3.8}
		if got := l.Positions[gene]; !almostEqual(got, want) {
			t.Errorf("position[%s] = %+v, want %+v", gene, got, want)
		}
	}

	// Single triple-category gene at angle 0 on the 2.3 ring.
	if got := l.Positions["T1"]; !almostEqual(got, Point{X: 2.3, Y: 0}) {
		t.Errorf("position[T1] = %+v, want (2.3, 0)", got)
	}

	// No "4+" genes: category absent, no stray positions.
	if _, ok := l.Genes[netmap.CategoryMany]; ok {
		t.Error("empty category should be absent from Genes")
	}
	if len(l.Positions) != 3+3 {
		t.Errorf("Positions has %d entries, want 6 (3 miRNAs + 3 genes)", len(l.Positions))
	}
}

func TestComputeColorAssignment(t *testing.T) {
	palette := []string{"#D73027", "#FC8D59", "#F46D43"}
	edges := pairEdges("miR-b", "miR-a")

	l := Compute(edges, palette, DefaultConfig())

	want := map[string]string{"miR-b": "#D73027", "miR-a": "#FC8D59"}
	if !reflect.DeepEqual(l.Colors, want) {
		t.Errorf("Colors = %v, want %v", l.Colors, want)
	}
	if l.PaletteWrapped {
		t.Error("PaletteWrapped should be false when the palette suffices")
	}

	// Stable across recomputation.
	again := Compute(edges, palette, DefaultConfig())
	if !reflect.DeepEqual(again.Colors, l.Colors) {
		t.Errorf("recomputed Colors = %v, want %v", again.Colors, l.Colors)
	}
}

func TestComputePaletteWraparound(t *testing.T) {
	palette := []string{"#111111", "#222222"}
	edges := pairEdges("m1", "m2", "m3")

	l := Compute(edges, palette, DefaultConfig())

	if !l.PaletteWrapped {
		t.Error("PaletteWrapped should be true with 3 miRNAs and 2 colors")
	}
	if l.Colors["m3"] != "#111111" {
		t.Errorf("m3 color = %q, want wraparound to %q", l.Colors["m3"], "#111111")
	}
}

func TestComputeEmptyEdgeList(t *testing.T) {
	l := Compute(nil, []string{"#111111"}, DefaultConfig())

	if len(l.MiRNAs) != 0 || len(l.Positions) != 0 || len(l.Colors) != 0 {
		t.Errorf("empty edge list should yield an empty layout, got %+v", l)
	}
}
