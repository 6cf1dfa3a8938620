// ABOUTME: Tests for BFS paths from allocations back to roots
// ABOUTME: Covers multiple roots, cycles, and path limits

package graph

import "testing"

func pathsFixture() Graph {
	return build([]*Node{
		{ID: 1, Refs: []NodeID{3}},
		{ID: 2, Refs: []NodeID{3}},
		{ID: 3, Refs: []NodeID{4}},
		{ID: 4},
	}, []NodeID{1, 2})
}

func TestPathsToRoots(t *testing.T) {
	g := pathsFixture()

	paths := PathsToRoots(g, 4, 10)
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
	for _, p := range paths {
		if p.IDs[0] != 4 {
			t.Errorf("path %v does not start at the target", p.IDs)
		}
		last := p.IDs[len(p.IDs)-1]
		if last != 1 && last != 2 {
			t.Errorf("path %v does not end at a root", p.IDs)
		}
	}
}

func TestPathsToRootsTargetIsRoot(t *testing.T) {
	g := pathsFixture()
	paths := PathsToRoots(g, 1, 5)
	if len(paths) != 1 || len(paths[0].IDs) != 1 || paths[0].IDs[0] != 1 {
		t.Errorf("paths = %v, want the single-node path", paths)
	}
}

func TestPathsToRootsLimit(t *testing.T) {
	g := pathsFixture()
	if paths := PathsToRoots(g, 4, 1); len(paths) != 1 {
		t.Errorf("limit 1 returned %d paths", len(paths))
	}
	if paths := PathsToRoots(g, 4, 0); paths != nil {
		t.Errorf("limit 0 returned %v", paths)
	}
}

func TestPathsToRootsThroughCycle(t *testing.T) {
	g := build([]*Node{
		{ID: 1, Refs: []NodeID{2}},
		{ID: 2, Refs: []NodeID{3}},
		{ID: 3, Refs: []NodeID{2, 4}},
		{ID: 4},
	}, []NodeID{1})

	paths := PathsToRoots(g, 4, 5)
	if len(paths) == 0 {
		t.Fatal("no path found through the cycle")
	}
	want := []NodeID{4, 3, 2, 1}
	got := paths[0].IDs
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
}

func TestPathsToRootsUnreachable(t *testing.T) {
	g := build([]*Node{
		{ID: 1},
		{ID: 2}, // no referrers, not rooted
	}, []NodeID{1})

	if paths := PathsToRoots(g, 2, 5); len(paths) != 0 {
		t.Errorf("unreachable node produced paths: %v", paths)
	}
}
