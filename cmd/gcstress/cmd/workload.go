// ABOUTME: Synthetic cyclic workloads for stressing the collector
// ABOUTME: Builds rings of cells that plain reference counting could never free

package cmd

import (
	"math/rand"

	"github.com/prateek/cyclegc/gc"
	"github.com/prateek/cyclegc/trace"
)

// cell is one ring member: some ballast bytes plus an edge to the next cell.
type cell struct {
	ballast trace.Slice[trace.Byte]
	next    trace.Option[gc.Gc[*cell]]
}

func (c *cell) Finalize() {}

func (c *cell) Trace(v trace.Visitor) {
	c.ballast.Trace(v)
	c.next.Trace(v)
}

// SizeBytes reports the ballast so it counts toward the collection threshold.
func (c *cell) SizeBytes() uint64 {
	return uint64(len(c.ballast))
}

// buildRing allocates a cycle of length cells on h and returns the rooted
// head handle. The ring's interior handles live only in the managed graph.
func buildRing(h *gc.Heap, length, ballast int) gc.Gc[*cell] {
	head := gc.NewIn(h, &cell{ballast: make(trace.Slice[trace.Byte], ballast)})

	prev := head
	for i := 1; i < length; i++ {
		c := gc.NewIn(h, &cell{ballast: make(trace.Slice[trace.Byte], ballast)})
		(*prev.Get()).next = trace.Some(c)
		trace.Unroot(c)
		prev = c
	}

	// Closing edge: the graph gains a reference to head, but the external
	// handle keeps its own root claim.
	(*prev.Get()).next = trace.Some(head)
	return head
}

// churn builds rings rounds of rings and drops a fraction of the external
// handles each round, leaving dead cycles for the collector.
func churn(h *gc.Heap, rng *rand.Rand, rings, length, ballast int, drop float64) []gc.Gc[*cell] {
	var kept []gc.Gc[*cell]
	for i := 0; i < rings; i++ {
		head := buildRing(h, length, ballast)
		if rng.Float64() < drop {
			trace.Unroot(head)
		} else {
			kept = append(kept, head)
		}
	}
	return kept
}
