// ABOUTME: Leaf Trace implementations for types that own no managed pointers
// ABOUTME: Scalars, strings, paths, atomics, function values, and the NoTrace adapter

package trace

import "sync/atomic"

// The leaf types below own no managed pointers, so every protocol operation
// over them is a no-op. They are the base case of the structural induction:
// a container of leaves is traced correctly because tracing each element
// does nothing.
//
// Go's builtin types cannot carry methods, so each leaf is a named wrapper
// with the same underlying type. Use them directly as element types, or wrap
// an arbitrary pointer-free foreign type in NoTrace.

type (
	Bool    bool
	Int     int
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint    uint
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Uintptr uintptr
	Float32 float32
	Float64 float64

	Complex64  complex64
	Complex128 complex128

	// Rune and Byte share underlying types with Int32 and Uint8 but are
	// distinct named types, mirroring Go's own aliases.
	Rune rune
	Byte byte

	String string

	// Path is a filesystem path. Go paths are plain strings; the distinct
	// type exists so path-typed fields read as such.
	Path string

	// Unit is the empty value, and doubles as the zero-arity tuple.
	Unit struct{}
)

func (Bool) Finalize()           {}
func (Bool) Trace(Visitor)       {}
func (Int) Finalize()            {}
func (Int) Trace(Visitor)        {}
func (Int8) Finalize()           {}
func (Int8) Trace(Visitor)       {}
func (Int16) Finalize()          {}
func (Int16) Trace(Visitor)      {}
func (Int32) Finalize()          {}
func (Int32) Trace(Visitor)      {}
func (Int64) Finalize()          {}
func (Int64) Trace(Visitor)      {}
func (Uint) Finalize()           {}
func (Uint) Trace(Visitor)       {}
func (Uint8) Finalize()          {}
func (Uint8) Trace(Visitor)      {}
func (Uint16) Finalize()         {}
func (Uint16) Trace(Visitor)     {}
func (Uint32) Finalize()         {}
func (Uint32) Trace(Visitor)     {}
func (Uint64) Finalize()         {}
func (Uint64) Trace(Visitor)     {}
func (Uintptr) Finalize()        {}
func (Uintptr) Trace(Visitor)    {}
func (Float32) Finalize()        {}
func (Float32) Trace(Visitor)    {}
func (Float64) Finalize()        {}
func (Float64) Trace(Visitor)    {}
func (Complex64) Finalize()      {}
func (Complex64) Trace(Visitor)  {}
func (Complex128) Finalize()     {}
func (Complex128) Trace(Visitor) {}
func (Rune) Finalize()           {}
func (Rune) Trace(Visitor)       {}
func (Byte) Finalize()           {}
func (Byte) Trace(Visitor)       {}
func (String) Finalize()         {}
func (String) Trace(Visitor)     {}
func (Path) Finalize()           {}
func (Path) Trace(Visitor)       {}
func (Unit) Finalize()           {}
func (Unit) Trace(Visitor)       {}

// Atomic leaf wrappers. The embedded sync/atomic value keeps its full method
// set; the wrapper only adds the no-op protocol methods. Atomicity here is
// about torn reads within one goroutine's cooperative mutation, not about
// sharing graphs across goroutines, which the protocol does not support.

type AtomicBool struct{ atomic.Bool }

func (*AtomicBool) Finalize()     {}
func (*AtomicBool) Trace(Visitor) {}

type AtomicInt32 struct{ atomic.Int32 }

func (*AtomicInt32) Finalize()     {}
func (*AtomicInt32) Trace(Visitor) {}

type AtomicInt64 struct{ atomic.Int64 }

func (*AtomicInt64) Finalize()     {}
func (*AtomicInt64) Trace(Visitor) {}

type AtomicUint32 struct{ atomic.Uint32 }

func (*AtomicUint32) Finalize()     {}
func (*AtomicUint32) Trace(Visitor) {}

type AtomicUint64 struct{ atomic.Uint64 }

func (*AtomicUint64) Finalize()     {}
func (*AtomicUint64) Trace(Visitor) {}

// Func is the leaf for callable values. A function value carries no managed
// pointers by construction in this model, whatever its arity or signature,
// so a single generic wrapper covers the whole family.
type Func[F any] struct {
	Fn F
}

func (Func[F]) Finalize()     {}
func (Func[F]) Trace(Visitor) {}

// NoTrace adapts a foreign type that owns no managed pointers. It is the
// explicit opt-in replacement for a blanket "no capability needed" default:
// wrapping a value asserts, at the call site, that nothing inside it is
// managed. Wrapping a type that does own managed pointers hides those
// pointers from the collector and will free them prematurely.
type NoTrace[T any] struct {
	V T
}

// WithoutTrace wraps v for storage in a managed payload.
func WithoutTrace[T any](v T) NoTrace[T] {
	return NoTrace[T]{V: v}
}

func (NoTrace[T]) Finalize()     {}
func (NoTrace[T]) Trace(Visitor) {}
