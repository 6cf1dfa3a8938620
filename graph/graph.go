// ABOUTME: Graph interface and in-memory implementation for heap snapshots
// ABOUTME: Stores allocation nodes and the rooted subset

package graph

import "sync"

// Graph is a snapshot of the managed heap's ownership graph.
type Graph interface {
	// Add inserts or replaces a node.
	Add(n *Node)

	// Node returns the node with the given ID, or nil.
	Node(id NodeID) *Node

	// Len returns the number of nodes.
	Len() int

	// Each calls fn for every node, in unspecified order.
	Each(fn func(*Node))

	// SetRoots records which nodes had a positive root count.
	SetRoots(ids []NodeID)

	// Roots returns the rooted node IDs.
	Roots() []NodeID
}

// MemGraph is the in-memory Graph implementation.
type MemGraph struct {
	mu    sync.RWMutex
	nodes map[NodeID]*Node
	roots []NodeID
}

// NewMemGraph returns an empty graph.
func NewMemGraph() *MemGraph {
	return &MemGraph{nodes: make(map[NodeID]*Node)}
}

// Add inserts or replaces a node.
func (g *MemGraph) Add(n *Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[n.ID] = n
}

// Node returns the node with the given ID, or nil.
func (g *MemGraph) Node(id NodeID) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *MemGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Each calls fn for every node, in unspecified order.
func (g *MemGraph) Each(fn func(*Node)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		fn(n)
	}
}

// SetRoots records which nodes had a positive root count.
func (g *MemGraph) SetRoots(ids []NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roots = ids
}

// Roots returns the rooted node IDs.
func (g *MemGraph) Roots() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roots
}
