// ABOUTME: Core capability contracts for the cycle-collector protocol
// ABOUTME: Defines Finalizer, Tracer, Pointer and the four coordinated operations

// Package trace defines the capability contracts that let a reference-counted
// managed pointer participate in cycle collection: Finalizer (one-shot
// cleanup) and Tracer (enumeration of directly owned managed pointers),
// together with structural implementations for scalars, arrays, tuples,
// function values, and the standard container shapes.
//
// A type's Trace method must invoke its visitor exactly once per managed
// pointer the value directly owns, by delegating to the Trace method of each
// contained value. The set of pointers visited must be a pure function of the
// value's current contents. The contract is not checkable by the compiler: an
// implementation that skips a pointer, or visits one twice, corrupts the
// collector's liveness computation and manifests as a use-after-free or a
// leak, not as an error value. Treat hand-written implementations as
// safety-critical code.
package trace

// Finalizer is the one-shot cleanup capability. Finalize is run at most once
// per object, by the collector, shortly before the object is reclaimed. It
// must not assume any other object in the same collected cycle is still
// valid, and it is not guaranteed to run for objects that remain reachable
// at shutdown.
type Finalizer interface {
	Finalize()
}

// Pointer is the protocol's view of a single managed pointer: the boundary
// where a graph walk meets the allocation header. It is implemented by the
// managed pointer type (gc.Gc); payload types never implement it directly.
type Pointer interface {
	// Mark records the allocation as reachable in the current collection
	// pass and, if it was not already marked, continues the walk into the
	// payload.
	Mark()

	// Root increments the allocation's root count.
	Root()

	// Unroot decrements the allocation's root count. Every Root call must
	// be matched by exactly one Unroot call; unpaired calls drift the root
	// count and cause premature collection or a permanent leak.
	Unroot()

	// FinalizeOnce finalizes the allocation's payload if it has not been
	// finalized already, propagating finalization through the payload.
	FinalizeOnce()

	// ID reports a stable identifier for the allocation, for heap
	// inspection tooling. It carries no protocol semantics.
	ID() uint64
}

// Visitor receives each managed pointer directly owned by a value.
type Visitor func(p Pointer)

// Tracer is the traversal capability required of every type stored inside a
// managed pointer. Trace must apply the visitor to every managed pointer the
// value directly owns: leaves do nothing, composites delegate to the Trace
// of each immediate element, and the managed pointer type itself presents
// its own allocation to the visitor.
//
// All four protocol operations (Mark, Root, Unroot, FinalizeGlue) are built
// on this single enumeration, so a correct Trace makes them visit the same
// pointer set by construction.
type Tracer interface {
	Finalizer
	Trace(v Visitor)
}

// Mark marks every managed pointer directly owned by val as reachable in the
// current collection pass. The collector invokes it, via Pointer.Mark, for
// each rooted allocation's payload.
func Mark(val Tracer) {
	val.Trace(Pointer.Mark)
}

// Root increments the root count of every managed pointer directly owned by
// val. Invoked when a value escapes into a root position, e.g. is bound to a
// stack slot of the embedding environment.
func Root(val Tracer) {
	val.Trace(Pointer.Root)
}

// Unroot decrements the root count of every managed pointer directly owned
// by val. Invoked when a rooted value moves back into the managed graph.
// Calls must pair with earlier Root calls one to one.
func Unroot(val Tracer) {
	val.Trace(Pointer.Unroot)
}

// FinalizeGlue runs val's own Finalize action and then propagates
// finalization into every managed pointer val directly owns. Whether a given
// allocation's payload actually runs depends on its finalized flag, which is
// owned by the collector, not by this layer.
func FinalizeGlue(val Tracer) {
	val.Finalize()
	val.Trace(Pointer.FinalizeOnce)
}
