// ABOUTME: BFS search for reference paths from an allocation back to the roots
// ABOUTME: Explains why a given allocation is still alive

package graph

// Path is a chain of allocations from a target back to a rooted node.
type Path struct {
	IDs []NodeID // target first, root last
}

// PathsToRoots finds up to maxPaths reference chains explaining how the
// allocation with the given ID is reachable from the root set. Paths are
// discovered breadth-first, so shorter explanations come first; cycles are
// skipped within each path.
func PathsToRoots(g Graph, from NodeID, maxPaths int) []Path {
	if maxPaths <= 0 {
		return nil
	}

	preds := BuildPredecessors(g)

	rooted := make(map[NodeID]bool)
	for _, id := range g.Roots() {
		rooted[id] = true
	}
	if rooted[from] {
		return []Path{{IDs: []NodeID{from}}}
	}

	type searchNode struct {
		id   NodeID
		path []NodeID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []NodeID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		cur := queue[0]
		queue = queue[1:]

		for _, ref := range preds[cur.id] {
			inPath := false
			for _, id := range cur.path {
				if id == ref {
					inPath = true
					break
				}
			}
			if inPath {
				continue
			}

			next := make([]NodeID, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = ref

			if rooted[ref] {
				result = append(result, Path{IDs: next})
				if len(result) >= maxPaths {
					break
				}
			} else {
				queue = append(queue, searchNode{id: ref, path: next})
			}
		}
	}

	return result
}
