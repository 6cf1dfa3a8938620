// ABOUTME: Lengauer-Tarjan immediate dominators over heap snapshot graphs
// ABOUTME: The basis for retained-size accounting

package graph

// Dominators computes the immediate dominator of every allocation reachable
// from the root set, using the Lengauer-Tarjan algorithm with a synthetic
// super-root (ID 0) pointing at every rooted node. An allocation's dominator
// is the unique node every path from the roots must pass through; an
// allocation dominated by node D would become unreachable, and collectable,
// if D's references were cleared.
//
// Returns a map from node ID to immediate dominator ID. Unreachable nodes do
// not appear; nodes whose only dominator is the root set map to 0.
func Dominators(g Graph) map[NodeID]NodeID {
	succ := make(map[NodeID][]NodeID, g.Len()+1)
	g.Each(func(n *Node) {
		if len(n.Refs) > 0 {
			succ[n.ID] = n.Refs
		}
	})
	succ[0] = g.Roots()

	preds := make(map[NodeID][]NodeID)
	for from, targets := range succ {
		for _, to := range targets {
			preds[to] = append(preds[to], from)
		}
	}

	// DFS numbering and spanning tree from the super-root.
	var dfsNum int
	vertex := make([]NodeID, 0, g.Len()+1) // DFS number -> node
	dfnum := make(map[NodeID]int)          // node -> DFS number
	parent := make(map[NodeID]int)         // node -> DFS number of spanning-tree parent
	semi := make(map[NodeID]int)           // node -> DFS number of semidominator
	ancestor := make(map[NodeID]int)       // link-eval forest
	best := make(map[NodeID]NodeID)        // link-eval forest
	samedom := make(map[NodeID]NodeID)
	idom := make(map[NodeID]NodeID)
	bucket := make(map[int][]NodeID) // semidominator number -> nodes

	var dfs func(v NodeID, p int)
	dfs = func(v NodeID, p int) {
		if _, visited := dfnum[v]; visited {
			return
		}
		dfnum[v] = dfsNum
		vertex = append(vertex, v)
		parent[v] = p
		semi[v] = dfsNum
		ancestor[v] = -1
		best[v] = v
		samedom[v] = v
		dfsNum++

		for _, w := range succ[v] {
			dfs(w, dfnum[v])
		}
	}
	dfs(0, -1)

	// Path-compressing eval over the link forest.
	var compress func(v NodeID)
	compress = func(v NodeID) {
		anc := vertex[ancestor[v]]
		if ancestor[anc] == -1 {
			return
		}
		compress(anc)
		if semi[best[anc]] < semi[best[v]] {
			best[v] = best[anc]
		}
		ancestor[v] = ancestor[anc]
	}
	eval := func(v NodeID) NodeID {
		if ancestor[v] == -1 {
			return v
		}
		compress(v)
		return best[v]
	}

	// Vertices in reverse DFS order: compute semidominators, then resolve
	// buckets at the spanning-tree parent.
	for i := dfsNum - 1; i > 0; i-- {
		w := vertex[i]
		wNum := dfnum[w]

		for _, v := range preds[w] {
			vNum, reachable := dfnum[v]
			if !reachable {
				continue
			}
			var u NodeID
			if vNum <= wNum {
				u = v
			} else {
				u = eval(v)
			}
			if semi[u] < semi[w] {
				semi[w] = semi[u]
			}
		}

		bucket[semi[w]] = append(bucket[semi[w]], w)
		if parent[w] != -1 {
			ancestor[w] = parent[w]
		}

		for _, v := range bucket[parent[w]] {
			u := eval(v)
			if semi[u] == semi[v] {
				idom[v] = vertex[parent[w]]
			} else {
				samedom[v] = u
			}
		}
		bucket[parent[w]] = nil
	}

	// Deferred idoms share their semidominator path's answer.
	for i := 1; i < dfsNum; i++ {
		w := vertex[i]
		if samedom[w] != w {
			idom[w] = idom[samedom[w]]
		}
	}

	delete(idom, 0)
	return idom
}

// DominatorTree inverts an immediate-dominator map into child lists keyed by
// dominator, rooted at the super-root (ID 0).
func DominatorTree(idom map[NodeID]NodeID) map[NodeID][]NodeID {
	tree := make(map[NodeID][]NodeID, len(idom)+1)
	for node := range idom {
		tree[node] = []NodeID{}
	}
	tree[0] = []NodeID{}
	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	return tree
}
