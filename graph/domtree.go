// ABOUTME: Traversal helpers over dominator trees
// ABOUTME: Depths, dominator paths, and dominance queries

package graph

// DominatorDepth computes each node's depth in the dominator tree; the
// super-root has depth 0.
func DominatorDepth(tree map[NodeID][]NodeID) map[NodeID]int {
	depth := make(map[NodeID]int, len(tree))

	var walk func(node NodeID, d int)
	walk = func(node NodeID, d int) {
		depth[node] = d
		for _, child := range tree[node] {
			walk(child, d+1)
		}
	}
	walk(0, 0)

	return depth
}

// DominatorPath returns the chain of dominators from node up to the
// super-root, starting with node itself.
func DominatorPath(idom map[NodeID]NodeID, node NodeID) []NodeID {
	var path []NodeID
	current := node
	for {
		path = append(path, current)
		dom, ok := idom[current]
		if !ok || dom == 0 {
			if current != 0 {
				path = append(path, 0)
			}
			break
		}
		current = dom
	}
	return path
}

// IsDominated reports whether every root path to node passes through
// dominator. A node dominates itself.
func IsDominated(idom map[NodeID]NodeID, node, dominator NodeID) bool {
	if node == dominator {
		return true
	}
	current := node
	for {
		dom, ok := idom[current]
		if !ok {
			return false
		}
		if dom == dominator {
			return true
		}
		if dom == 0 {
			return dominator == 0
		}
		current = dom
	}
}
