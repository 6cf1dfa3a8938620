// ABOUTME: Generator for the fixed-size array and tuple Trace families
// ABOUTME: Run with go run gen.go to regenerate array_gen.go and tuple_gen.go

//go:build ignore

// This program writes array_gen.go (Array0 through Array32) and tuple_gen.go
// (Tuple1 through Tuple12). Go has no const-generic array lengths and no
// variadic type parameters, so the families are emitted mechanically up to a
// documented cutoff; lengths and arities beyond it need a hand-written
// implementation or a variable-length container.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
)

const maxArrayLen = 32

const maxTupleArity = 12

const header = `// ABOUTME: %s
// ABOUTME: Generated by gen.go; lengths beyond the cutoff need a hand-written impl

// Code generated by gen.go; DO NOT EDIT.

package trace
`

func main() {
	if err := os.WriteFile("array_gen.go", arrays(), 0644); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("tuple_gen.go", tuples(), 0644); err != nil {
		log.Fatal(err)
	}
}

func arrays() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, header, "Trace implementations for fixed-size arrays of length 0 through 32")
	for n := 0; n <= maxArrayLen; n++ {
		fmt.Fprintf(&b, "\n// Array%d is a fixed-size sequence of %d traced elements.\n", n, n)
		fmt.Fprintf(&b, "type Array%d[T Tracer] [%d]T\n\n", n, n)
		fmt.Fprintf(&b, "func (Array%d[T]) Finalize() {}\n\n", n)
		fmt.Fprintf(&b, "func (a Array%d[T]) Trace(v Visitor) {\n", n)
		fmt.Fprintf(&b, "\tfor i := range a {\n\t\ta[i].Trace(v)\n\t}\n}\n")
	}
	return b.Bytes()
}

func tuples() []byte {
	names := strings.Split("A B C D E F G H I J K L", " ")
	var b bytes.Buffer
	fmt.Fprintf(&b, header, "Trace implementations for heterogeneous tuples of arity 1 through 12")
	fmt.Fprintf(&b, "\n// Unit (leaf.go) is the zero-arity tuple.\n")
	for n := 1; n <= maxTupleArity; n++ {
		params := strings.Join(names[:n], ", ")
		fmt.Fprintf(&b, "\n// Tuple%d groups %d independently traced values.\n", n, n)
		fmt.Fprintf(&b, "type Tuple%d[%s Tracer] struct {\n", n, params)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "\t%s %s\n", names[i], names[i])
		}
		fmt.Fprintf(&b, "}\n\n")
		fmt.Fprintf(&b, "func (Tuple%d[%s]) Finalize() {}\n\n", n, params)
		fmt.Fprintf(&b, "func (t Tuple%d[%s]) Trace(v Visitor) {\n", n, params)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "\tt.%s.Trace(v)\n", names[i])
		}
		fmt.Fprintf(&b, "}\n")
	}
	return b.Bytes()
}
