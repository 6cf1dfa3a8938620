// ABOUTME: Structural Trace implementations for the standard container shapes
// ABOUTME: Slices, maps, sets, ordered variants, deques, lists, and heaps

package trace

import (
	"container/heap"
	"container/list"

	"github.com/gammazero/deque"
	"github.com/google/btree"
)

// Key constrains hashed container keys: comparable so Go can hash them, and
// Tracer so keys holding managed pointers are traced like any other element.
type Key interface {
	comparable
	Tracer
}

// Slice is an insertion-ordered sequence. Every protocol operation visits
// each element exactly once.
type Slice[T Tracer] []T

func (Slice[T]) Finalize() {}

func (s Slice[T]) Trace(v Visitor) {
	for i := range s {
		s[i].Trace(v)
	}
}

// Map is a hashed map. Both keys and values are traced for every entry.
type Map[K Key, V Tracer] map[K]V

func (Map[K, V]) Finalize() {}

func (m Map[K, V]) Trace(v Visitor) {
	for k, val := range m {
		k.Trace(v)
		val.Trace(v)
	}
}

// Set is a hashed set.
type Set[T Key] map[T]struct{}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (Set[T]) Finalize() {}

func (s Set[T]) Trace(v Visitor) {
	for e := range s {
		e.Trace(v)
	}
}

type mapEntry[K, V Tracer] struct {
	key K
	val V
}

// OrderedMap is a map ordered by a caller-supplied less function over keys.
type OrderedMap[K, V Tracer] struct {
	tree *btree.BTreeG[mapEntry[K, V]]
}

// NewOrderedMap returns an ordered map whose keys sort by less.
func NewOrderedMap[K, V Tracer](less func(a, b K) bool) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		tree: btree.NewG(2, func(a, b mapEntry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// Set inserts or replaces the entry for k.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.tree.ReplaceOrInsert(mapEntry[K, V]{key: k, val: v})
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	var zero V
	e, ok := m.tree.Get(mapEntry[K, V]{key: k, val: zero})
	return e.val, ok
}

// Delete removes the entry for k, reporting whether one existed.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	var zero V
	_, ok := m.tree.Delete(mapEntry[K, V]{key: k, val: zero})
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return m.tree.Len()
}

// Ascend calls fn for each entry in key order until fn returns false.
func (m *OrderedMap[K, V]) Ascend(fn func(k K, v V) bool) {
	m.tree.Ascend(func(e mapEntry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

func (*OrderedMap[K, V]) Finalize() {}

func (m *OrderedMap[K, V]) Trace(v Visitor) {
	if m.tree == nil {
		return
	}
	m.tree.Ascend(func(e mapEntry[K, V]) bool {
		e.key.Trace(v)
		e.val.Trace(v)
		return true
	})
}

// OrderedSet is a set ordered by a caller-supplied less function.
type OrderedSet[T Tracer] struct {
	tree *btree.BTreeG[T]
}

// NewOrderedSet returns an ordered set sorted by less.
func NewOrderedSet[T Tracer](less func(a, b T) bool) *OrderedSet[T] {
	return &OrderedSet[T]{tree: btree.NewG(2, btree.LessFunc[T](less))}
}

// Add inserts v into the set.
func (s *OrderedSet[T]) Add(v T) {
	s.tree.ReplaceOrInsert(v)
}

// Has reports whether v is in the set.
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.tree.Get(v)
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for each element in order until fn returns false.
func (s *OrderedSet[T]) Ascend(fn func(v T) bool) {
	s.tree.Ascend(fn)
}

func (*OrderedSet[T]) Finalize() {}

func (s *OrderedSet[T]) Trace(v Visitor) {
	if s.tree == nil {
		return
	}
	s.tree.Ascend(func(e T) bool {
		e.Trace(v)
		return true
	})
}

// Deque is a double-ended queue. Elements are bounded by Tracer only;
// traversal needs neither equality nor hashing.
type Deque[T Tracer] struct {
	deque.Deque[T]
}

func (*Deque[T]) Finalize() {}

func (d *Deque[T]) Trace(v Visitor) {
	for i := 0; i < d.Len(); i++ {
		d.At(i).Trace(v)
	}
}

// List is a doubly linked list over container/list. Elements are bounded by
// Tracer only. The zero List is ready to use.
type List[T Tracer] struct {
	l list.List
}

// PushBack appends v at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.l.PushBack(v)
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.l.PushFront(v)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.l.Len()
}

// Each calls fn for every element, front to back.
func (l *List[T]) Each(fn func(v T)) {
	for e := l.l.Front(); e != nil; e = e.Next() {
		fn(e.Value.(T))
	}
}

func (*List[T]) Finalize() {}

func (l *List[T]) Trace(v Visitor) {
	for e := l.l.Front(); e != nil; e = e.Next() {
		e.Value.(T).Trace(v)
	}
}

// Heap is a priority structure over container/heap with a caller-supplied
// less function. Tracing visits every element; heap order is irrelevant to
// the protocol.
type Heap[T Tracer] struct {
	inner heapState[T]
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T Tracer](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{inner: heapState[T]{less: less}}
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	heap.Push(&h.inner, v)
}

// Pop removes and returns the least element.
func (h *Heap[T]) Pop() T {
	return heap.Pop(&h.inner).(T)
}

// Peek returns the least element without removing it.
func (h *Heap[T]) Peek() T {
	return h.inner.items[0]
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return len(h.inner.items)
}

func (*Heap[T]) Finalize() {}

func (h *Heap[T]) Trace(v Visitor) {
	for i := range h.inner.items {
		h.inner.items[i].Trace(v)
	}
}

// heapState adapts the element slice to heap.Interface so the exported Heap
// can keep a typed Push/Pop.
type heapState[T Tracer] struct {
	items []T
	less  func(a, b T) bool
}

func (s *heapState[T]) Len() int           { return len(s.items) }
func (s *heapState[T]) Less(i, j int) bool { return s.less(s.items[i], s.items[j]) }
func (s *heapState[T]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *heapState[T]) Push(x any) {
	s.items = append(s.items, x.(T))
}

func (s *heapState[T]) Pop() any {
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v
}
