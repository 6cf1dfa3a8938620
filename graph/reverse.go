// ABOUTME: Predecessor map construction for reverse traversal
// ABOUTME: Maps each allocation to the allocations referencing it

package graph

// Predecessors maps each node to the nodes whose payloads reference it.
type Predecessors map[NodeID][]NodeID

// BuildPredecessors inverts the ownership edges of g.
func BuildPredecessors(g Graph) Predecessors {
	preds := make(Predecessors)
	g.Each(func(n *Node) {
		for _, ref := range n.Refs {
			preds[ref] = append(preds[ref], n.ID)
		}
	})
	return preds
}
