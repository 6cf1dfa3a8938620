// ABOUTME: Graphviz DOT exporter for heap snapshots
// ABOUTME: Rooted allocations are drawn doubled for quick visual triage

package snapshot

import (
	"fmt"
	"io"
	"sort"

	"github.com/prateek/cyclegc/graph"
)

// DOTExporter writes snapshots as Graphviz digraphs.
type DOTExporter struct{}

// Format returns "dot".
func (DOTExporter) Format() string { return "dot" }

// Export writes g to w as a digraph, nodes sorted by ID for stable output.
func (DOTExporter) Export(w io.Writer, g graph.Graph) error {
	rooted := make(map[graph.NodeID]bool)
	for _, id := range g.Roots() {
		rooted[id] = true
	}

	var nodes []*graph.Node
	g.Each(func(n *graph.Node) { nodes = append(nodes, n) })
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	if _, err := fmt.Fprintln(w, "digraph heap {"); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	for _, n := range nodes {
		shape := "ellipse"
		if rooted[n.ID] {
			shape = "doublecircle"
		}
		_, err := fmt.Fprintf(w, "  n%d [label=\"#%d %s (%dB)\" shape=%s];\n",
			n.ID, n.ID, n.Type, n.Size, shape)
		if err != nil {
			return fmt.Errorf("export snapshot: %w", err)
		}
	}
	for _, n := range nodes {
		for _, ref := range n.Refs {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", n.ID, ref); err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	return nil
}

func init() {
	Register(DOTExporter{})
}
