// ABOUTME: Structural Trace implementations for single-value composites
// ABOUTME: Box, Option, and Result delegate every operation to their contents

package trace

// Box holds a single heap-allocated value. Tracing a Box delegates to the
// boxed value; an empty Box is a leaf.
type Box[T Tracer] struct {
	ptr *T
}

// NewBox allocates v and returns the box holding it.
func NewBox[T Tracer](v T) Box[T] {
	return Box[T]{ptr: &v}
}

// Get returns a pointer to the boxed value, or nil for the zero Box.
func (b Box[T]) Get() *T {
	return b.ptr
}

func (Box[T]) Finalize() {}

func (b Box[T]) Trace(v Visitor) {
	if b.ptr != nil {
		(*b.ptr).Trace(v)
	}
}

// Option holds either one value or nothing.
type Option[T Tracer] struct {
	val T
	ok  bool
}

// Some returns an Option holding v.
func Some[T Tracer](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None returns the empty Option. The zero Option is also empty.
func None[T Tracer]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

func (Option[T]) Finalize() {}

func (o Option[T]) Trace(v Visitor) {
	if o.ok {
		o.val.Trace(v)
	}
}

// Result holds either a success value or an error value. Exactly one side is
// populated; tracing delegates to whichever side that is.
type Result[T, E Tracer] struct {
	val T
	err E
	ok  bool
}

// Ok returns a successful Result.
func Ok[T, E Tracer](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Err returns a failed Result.
func Err[T, E Tracer](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value and whether the Result holds one.
func (r Result[T, E]) Value() (T, bool) {
	return r.val, r.ok
}

// Error returns the error value and whether the Result holds one.
func (r Result[T, E]) Error() (E, bool) {
	return r.err, !r.ok
}

func (Result[T, E]) Finalize() {}

func (r Result[T, E]) Trace(v Visitor) {
	if r.ok {
		r.val.Trace(v)
	} else {
		r.err.Trace(v)
	}
}
