// ABOUTME: Retained-size accounting over the dominator tree
// ABOUTME: Reports how many bytes each allocation keeps alive

package graph

// RetainedSize computes, for every reachable allocation, the bytes that
// would become collectable if that allocation were removed: its own payload
// plus the payloads of everything it dominates. This is the number a leak
// hunter sorts by.
func RetainedSize(g Graph) map[NodeID]uint64 {
	tree := DominatorTree(Dominators(g))
	sizes := nodeSizes(g)

	retained := make(map[NodeID]uint64, len(tree))
	var accumulate func(NodeID) uint64
	accumulate = func(id NodeID) uint64 {
		if size, done := retained[id]; done {
			return size
		}
		size := sizes[id]
		for _, child := range tree[id] {
			size += accumulate(child)
		}
		retained[id] = size
		return size
	}
	for id := range tree {
		accumulate(id)
	}

	delete(retained, 0)
	return retained
}

// RetainedSizeOf computes retained sizes for the given allocations only,
// sharing one dominator-tree pass. Unknown IDs are omitted from the result.
func RetainedSizeOf(g Graph, ids []NodeID) map[NodeID]uint64 {
	if len(ids) == 0 {
		return map[NodeID]uint64{}
	}

	tree := DominatorTree(Dominators(g))
	sizes := nodeSizes(g)

	memo := make(map[NodeID]uint64)
	var accumulate func(NodeID) uint64
	accumulate = func(id NodeID) uint64 {
		if size, done := memo[id]; done {
			return size
		}
		size := sizes[id]
		for _, child := range tree[id] {
			size += accumulate(child)
		}
		memo[id] = size
		return size
	}

	result := make(map[NodeID]uint64, len(ids))
	for _, id := range ids {
		if _, known := sizes[id]; known && id != 0 {
			result[id] = accumulate(id)
		}
	}
	return result
}

func nodeSizes(g Graph) map[NodeID]uint64 {
	sizes := make(map[NodeID]uint64, g.Len()+1)
	g.Each(func(n *Node) {
		sizes[n.ID] = n.Size
	})
	sizes[0] = 0
	return sizes
}
