// ABOUTME: Captures a live gc.Heap into a graph.Graph for analysis
// ABOUTME: Roots are the allocations with a positive root count

// Package snapshot turns a live managed heap into an analyzable graph and
// moves such graphs in and out of interchange formats (JSON, Graphviz DOT).
package snapshot

import (
	"github.com/prateek/cyclegc/gc"
	"github.com/prateek/cyclegc/graph"
)

// Capture builds a point-in-time ownership graph of every live allocation
// in h. The heap must not be mutated during the capture.
func Capture(h *gc.Heap) graph.Graph {
	g := graph.NewMemGraph()
	var roots []graph.NodeID

	for _, obj := range h.Objects() {
		refs := make([]graph.NodeID, 0, len(obj.Refs))
		for _, id := range obj.Refs {
			refs = append(refs, graph.NodeID(id))
		}
		g.Add(&graph.Node{
			ID:   graph.NodeID(obj.ID),
			Type: obj.Type,
			Size: obj.Size,
			Refs: refs,
		})
		if obj.Roots > 0 {
			roots = append(roots, graph.NodeID(obj.ID))
		}
	}

	g.SetRoots(roots)
	return g
}
