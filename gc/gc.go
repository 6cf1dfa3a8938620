// ABOUTME: The Gc managed pointer: a reference-counted handle on a heap box
// ABOUTME: Implements the trace protocol boundary for its allocation header

// Package gc provides the reference consumer of the trace protocol: a
// managed pointer type (Gc) and a Heap that runs the mark, finalize, and
// sweep cycle over its allocation set. Plain reference counting cannot free
// cyclic structures; the heap's collection pass reclaims exactly the boxes
// unreachable from any rooted box, using each payload's Tracer
// implementation to walk the graph.
//
// Neither Gc nor Heap is safe for concurrent use: the protocol assumes
// single-owner, cooperative mutation of the managed graph.
package gc

import (
	"reflect"

	"github.com/prateek/cyclegc/trace"
)

// header carries the collector-facing state of one allocation.
type header struct {
	id        uint64
	typ       string
	size      uint64
	roots     uint32
	marked    bool
	finalized bool
}

// managed is the heap's uniform view over boxes of every payload type.
type managed interface {
	hdr() *header
	mark()
	finalizeOnce() bool
	refs() []uint64
}

// box is one allocation: the header plus the traced payload.
type box[T trace.Tracer] struct {
	header
	value T
}

func (b *box[T]) hdr() *header { return &b.header }

// mark records the box reachable and, on first visit in a pass, continues
// the walk into the payload. The mark bit is the cycle cutoff.
func (b *box[T]) mark() {
	if b.marked {
		return
	}
	b.marked = true
	trace.Mark(b.value)
}

// finalizeOnce runs finalization glue over the payload on the first call,
// reporting whether it ran. The finalized flag lives here because deciding
// whether a finalizer runs belongs to the collector, not the protocol.
func (b *box[T]) finalizeOnce() bool {
	if b.finalized {
		return false
	}
	b.finalized = true
	trace.FinalizeGlue(b.value)
	return true
}

// refs enumerates the IDs of allocations the payload directly owns.
func (b *box[T]) refs() []uint64 {
	var out []uint64
	b.value.Trace(func(p trace.Pointer) {
		out = append(out, p.ID())
	})
	return out
}

// Gc is a managed pointer: a copyable handle on a heap-allocated, traced
// payload. Copies share the same allocation. A Gc returned by New or NewIn
// is born rooted (root count 1); storing it inside another managed payload
// transfers that rooted reference into the graph, so the caller drops its
// external claim with trace.Unroot exactly once. Holding additional external
// handles requires explicit trace.Root / trace.Unroot pairing.
type Gc[T trace.Tracer] struct {
	b *box[T]
}

// New allocates v on the default heap.
func New[T trace.Tracer](v T) Gc[T] {
	return NewIn(Default(), v)
}

// Sizer reports payload bytes the type's shallow layout does not show, such
// as slice or map contents. Payloads implementing it have the reported bytes
// added to their allocation size, so backing storage counts toward the
// collection threshold and shows up in heap inspection.
type Sizer interface {
	SizeBytes() uint64
}

// NewIn allocates v on h. The returned handle is rooted; the payload's own
// directly owned pointers are unrooted, since they just moved off the root
// set and into the managed graph.
func NewIn[T trace.Tracer](h *Heap, v T) Gc[T] {
	size := uint64(reflect.TypeFor[T]().Size())
	if s, ok := any(v).(Sizer); ok {
		size += s.SizeBytes()
	}
	h.beforeAlloc(size)

	b := &box[T]{
		header: header{
			id:    h.nextID(),
			typ:   reflect.TypeFor[T]().String(),
			size:  size,
			roots: 1,
		},
		value: v,
	}
	trace.Unroot(b.value)
	h.adopt(b)
	return Gc[T]{b: b}
}

// Get returns a pointer to the payload for reading and in-place mutation.
// Mutating the payload's managed pointers is a graph mutation and is subject
// to the root/unroot discipline. Get panics on the zero Gc.
func (g Gc[T]) Get() *T {
	if g.b == nil {
		panic("gc: Get on zero Gc")
	}
	return &g.b.value
}

// Alive reports whether the handle refers to an allocation. The zero Gc
// refers to nothing.
func (g Gc[T]) Alive() bool {
	return g.b != nil
}

// Finalize implements trace.Finalizer. The handle itself owns no resources.
func (Gc[T]) Finalize() {}

// Trace implements trace.Tracer: a Gc's only directly owned managed pointer
// is itself. The walk does not continue into the payload here; crossing the
// allocation boundary is the visitor's decision.
func (g Gc[T]) Trace(v trace.Visitor) {
	if g.b != nil {
		v(g)
	}
}

// Mark implements trace.Pointer.
func (g Gc[T]) Mark() { g.b.mark() }

// Root implements trace.Pointer, incrementing the allocation's root count.
func (g Gc[T]) Root() { g.b.roots++ }

// Unroot implements trace.Pointer, decrementing the allocation's root count.
func (g Gc[T]) Unroot() {
	if g.b.roots == 0 {
		panic("gc: unroot below zero; Root/Unroot calls are unpaired")
	}
	g.b.roots--
}

// FinalizeOnce implements trace.Pointer.
func (g Gc[T]) FinalizeOnce() { g.b.finalizeOnce() }

// ID implements trace.Pointer, reporting the allocation's stable identifier.
func (g Gc[T]) ID() uint64 { return g.b.id }
