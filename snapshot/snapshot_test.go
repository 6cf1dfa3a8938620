// ABOUTME: Tests for heap capture and the exporter registry
// ABOUTME: Round-trips snapshots through JSON and checks DOT output

package snapshot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prateek/cyclegc/gc"
	"github.com/prateek/cyclegc/graph"
	"github.com/prateek/cyclegc/trace"
)

// cell is a minimal traced payload holding one optional edge.
type cell struct {
	next trace.Option[gc.Gc[*cell]]
}

func (c *cell) Finalize() {}

func (c *cell) Trace(v trace.Visitor) {
	c.next.Trace(v)
}

func TestCapture(t *testing.T) {
	h := gc.NewHeap()

	a := gc.NewIn(h, &cell{})
	b := gc.NewIn(h, &cell{})
	(*a.Get()).next = trace.Some(b)
	trace.Unroot(b)

	g := Capture(h)

	if g.Len() != 2 {
		t.Fatalf("captured %d nodes, want 2", g.Len())
	}
	roots := g.Roots()
	if len(roots) != 1 || roots[0] != graph.NodeID(a.ID()) {
		t.Errorf("roots = %v, want [%d]", roots, a.ID())
	}

	na := g.Node(graph.NodeID(a.ID()))
	if na == nil || len(na.Refs) != 1 || na.Refs[0] != graph.NodeID(b.ID()) {
		t.Errorf("node a = %+v, want an edge to %d", na, b.ID())
	}
	if na.Size == 0 || na.Type == "" {
		t.Errorf("node a missing size/type: %+v", na)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := graph.NewMemGraph()
	g.Add(&graph.Node{ID: 1, Type: "*cell", Size: 16, Refs: []graph.NodeID{2}})
	g.Add(&graph.Node{ID: 2, Type: "*cell", Size: 16})
	g.SetRoots([]graph.NodeID{1})

	var buf bytes.Buffer
	if err := Export(&buf, g, "json"); err != nil {
		t.Fatalf("Export: %v", err)
	}

	got, err := ImportJSON(&buf)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.Len() != 2 {
		t.Errorf("round trip lost nodes: %d", got.Len())
	}
	n := got.Node(1)
	if n == nil || n.Type != "*cell" || n.Size != 16 || len(n.Refs) != 1 {
		t.Errorf("node 1 = %+v", n)
	}
	if roots := got.Roots(); len(roots) != 1 || roots[0] != 1 {
		t.Errorf("roots = %v, want [1]", roots)
	}
}

func TestImportJSONRejectsMissingID(t *testing.T) {
	_, err := ImportJSON(strings.NewReader(`{"nodes":[{"size":8}],"roots":[]}`))
	if err == nil {
		t.Error("expected an error for a node without an id")
	}
}

func TestDOTExport(t *testing.T) {
	g := graph.NewMemGraph()
	g.Add(&graph.Node{ID: 1, Type: "*cell", Size: 16, Refs: []graph.NodeID{2}})
	g.Add(&graph.Node{ID: 2, Type: "*cell", Size: 16})
	g.SetRoots([]graph.NodeID{1})

	var buf bytes.Buffer
	if err := Export(&buf, g, "dot"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"digraph heap {", "n1 -> n2;", "doublecircle"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	err := Export(&bytes.Buffer{}, graph.NewMemGraph(), "protobuf")
	if !errors.Is(err, ErrNoExporter) {
		t.Errorf("err = %v, want ErrNoExporter", err)
	}
}

func TestFormats(t *testing.T) {
	formats := Formats()
	if len(formats) < 2 || formats[0] != "dot" || formats[1] != "json" {
		t.Errorf("Formats = %v, want at least [dot json]", formats)
	}
}
