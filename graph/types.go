// ABOUTME: Core data types for managed-heap snapshot graphs
// ABOUTME: Defines Node and NodeID used by the analysis algorithms

// Package graph analyzes snapshots of a cycle-collected heap: which
// allocations dominate which, how much memory each one retains, and how an
// allocation is reachable from the root set. Snapshots are produced by the
// snapshot package from a live gc.Heap, or loaded from a saved export.
package graph

// NodeID identifies one managed allocation within a snapshot. ID 0 is
// reserved for the synthetic super-root used by the dominator algorithms.
type NodeID uint64

// Node is one managed allocation.
type Node struct {
	ID   NodeID   // stable allocation identifier
	Type string   // payload type name (e.g. "*main.cell")
	Size uint64   // payload size in bytes
	Refs []NodeID // allocations this node's payload directly owns
}
