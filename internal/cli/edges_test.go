package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mirnatools/targetnets/pkg/netmap"
)

const fixtureCSV = "miR-1,miR-2,miR-3\nG1,G1,G2\nG2,G2,\nG3,,\n"

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEdgesJSON(t *testing.T) {
	c := newTestCLI()
	input := writeFixture(t)
	output := filepath.Join(filepath.Dir(input), "out.edges.json")

	if err := c.runEdges(input, output, "json"); err != nil {
		t.Fatalf("runEdges() error: %v", err)
	}

	edges, err := netmap.ReadFile(output)
	if err != nil {
		t.Fatalf("reading edge list: %v", err)
	}
	if len(edges) != 5 {
		t.Errorf("got %d edges, want 5", len(edges))
	}
}

func TestRunEdgesCSV(t *testing.T) {
	c := newTestCLI()
	input := writeFixture(t)
	output := filepath.Join(filepath.Dir(input), "out.edges.csv")

	if err := c.runEdges(input, output, "csv"); err != nil {
		t.Fatalf("runEdges() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "miRNA,Gene,Category") {
		t.Errorf("CSV missing header: %q", string(data))
	}
}

func TestRunEdgesBadFormat(t *testing.T) {
	c := newTestCLI()
	if err := c.runEdges("x.csv", "", "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRunEdgesDefaultOutput(t *testing.T) {
	c := newTestCLI()
	input := writeFixture(t)

	if err := c.runEdges(input, "", "json"); err != nil {
		t.Fatalf("runEdges() error: %v", err)
	}

	want := strings.TrimSuffix(input, ".csv") + ".edges.json"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected default output at %s: %v", want, err)
	}
}
