// ABOUTME: Tests for Gc handle semantics and the end-to-end cycle collection scenario
// ABOUTME: Builds real cycles, drops roots, and verifies finalize-then-sweep behavior

package gc_test

import (
	"sort"
	"testing"

	"github.com/prateek/cyclegc/gc"
	"github.com/prateek/cyclegc/trace"
)

// node is a payload that can point at one other node, forming chains and
// cycles. Finalize appends the node's name to a shared log.
type node struct {
	name string
	log  *[]string
	next trace.Option[gc.Gc[*node]]
}

func (n *node) Finalize() {
	*n.log = append(*n.log, n.name)
}

func (n *node) Trace(v trace.Visitor) {
	n.next.Trace(v)
}

func newNode(name string, log *[]string) *node {
	return &node{name: name, log: log}
}

func TestHandleSharing(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	a := gc.NewIn(h, newNode("a", &log))
	b := a // copies share the allocation

	(*a.Get()).name = "renamed"
	if got := (*b.Get()).name; got != "renamed" {
		t.Errorf("copy sees name %q, want renamed", got)
	}
	if a.ID() != b.ID() {
		t.Errorf("copies report different IDs: %d vs %d", a.ID(), b.ID())
	}
}

func TestZeroHandle(t *testing.T) {
	var g gc.Gc[*node]
	if g.Alive() {
		t.Error("zero Gc reports Alive")
	}

	visited := 0
	g.Trace(func(trace.Pointer) { visited++ })
	if visited != 0 {
		t.Errorf("zero Gc visited %d pointers, want 0", visited)
	}

	defer func() {
		if recover() == nil {
			t.Error("Get on zero Gc did not panic")
		}
	}()
	g.Get()
}

func TestRootedAllocationSurvivesCollection(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	gc.NewIn(h, newNode("a", &log))

	pass := h.Collect()
	if pass.Freed != 0 || pass.Live != 1 {
		t.Errorf("pass freed %d live %d, want 0 freed 1 live", pass.Freed, pass.Live)
	}
	if len(log) != 0 {
		t.Errorf("finalizers ran for live allocation: %v", log)
	}
}

func TestUnrootedAllocationIsCollected(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	a := gc.NewIn(h, newNode("a", &log))
	trace.Unroot(a)

	pass := h.Collect()
	if pass.Freed != 1 || pass.Live != 0 {
		t.Errorf("pass freed %d live %d, want 1 freed 0 live", pass.Freed, pass.Live)
	}
	if len(log) != 1 || log[0] != "a" {
		t.Errorf("finalize log = %v, want [a]", log)
	}
}

// TestTwoNodeCycle is the end-to-end scenario: A owns a pointer to B, B owns
// a pointer back to A. While A is externally rooted both survive; once the
// external handle is dropped a trace pass finds no roots and a sweep must
// fire both finalizers exactly once, in either order.
func TestTwoNodeCycle(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	a := gc.NewIn(h, newNode("a", &log)) // rooted at birth
	b := gc.NewIn(h, newNode("b", &log)) // rooted at birth

	// Wire the cycle. Each stored handle moves into the managed graph, so
	// its external root claim is dropped; A keeps one external root.
	(*a.Get()).next = trace.Some(b)
	trace.Unroot(b)
	(*b.Get()).next = trace.Some(a)

	pass := h.Collect()
	if pass.Freed != 0 {
		t.Fatalf("rooted cycle: freed %d allocations, want 0", pass.Freed)
	}
	if len(log) != 0 {
		t.Fatalf("rooted cycle: finalizers ran: %v", log)
	}

	// Drop the last external handle; the cycle keeps both nodes' strong
	// references alive but nothing outside the graph reaches them.
	trace.Unroot(a)

	pass = h.Collect()
	if pass.Freed != 2 || pass.Live != 0 {
		t.Fatalf("dead cycle: freed %d live %d, want 2 freed 0 live", pass.Freed, pass.Live)
	}

	sort.Strings(log)
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("finalize log = %v, want a and b exactly once each", log)
	}

	// A further pass must not re-run finalizers.
	h.Collect()
	if len(log) != 2 {
		t.Errorf("finalizers re-ran on a later pass: %v", log)
	}
}

func TestNewInUnrootsStoredChildren(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	inner := gc.NewIn(h, newNode("inner", &log))
	// Moving inner into outer's payload hands its root claim to the graph.
	outer := gc.NewIn(h, &holder{child: trace.Some(inner)})

	roots := rootCounts(h)
	if roots[outer.ID()] != 1 {
		t.Errorf("outer root count = %d, want 1", roots[outer.ID()])
	}
	if roots[inner.ID()] != 0 {
		t.Errorf("inner root count = %d, want 0 after move into payload", roots[inner.ID()])
	}

	// outer rooted keeps inner alive through the edge.
	if pass := h.Collect(); pass.Freed != 0 {
		t.Errorf("freed %d, want 0 while outer is rooted", pass.Freed)
	}

	trace.Unroot(outer)
	if pass := h.Collect(); pass.Freed != 2 {
		t.Errorf("freed %d, want 2 once outer is unrooted", pass.Freed)
	}
}

// holder owns a single optional child node.
type holder struct {
	child trace.Option[gc.Gc[*node]]
}

func (h *holder) Finalize() {}

func (h *holder) Trace(v trace.Visitor) {
	h.child.Trace(v)
}

func TestRootUnrootPairingOnHeap(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	a := gc.NewIn(h, newNode("a", &log))

	for i := 0; i < 3; i++ {
		trace.Root(a)
	}
	if got := rootCounts(h)[a.ID()]; got != 4 {
		t.Errorf("root count = %d after 3 extra roots, want 4", got)
	}
	for i := 0; i < 3; i++ {
		trace.Unroot(a)
	}
	if got := rootCounts(h)[a.ID()]; got != 1 {
		t.Errorf("root count = %d after pairing, want 1", got)
	}
}

func TestUnpairedUnrootPanics(t *testing.T) {
	h := gc.NewHeap()
	var log []string

	a := gc.NewIn(h, newNode("a", &log))
	trace.Unroot(a)

	defer func() {
		if recover() == nil {
			t.Error("unroot below zero did not panic")
		}
	}()
	trace.Unroot(a)
}

func rootCounts(h *gc.Heap) map[uint64]uint32 {
	out := map[uint64]uint32{}
	for _, obj := range h.Objects() {
		out[obj.ID] = obj.Roots
	}
	return out
}
