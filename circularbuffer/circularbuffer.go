/*
Package circularbuffer provides a fixed capacity FIFO that overwrites its oldest element on push.

Chunkers that have to re-examine a value they saw k steps ago (bup, buzhash, the
rsyncable accumulators, zstd) keep their trailing window in a Buffer when they are fed
incrementally and cannot look back into the caller's slice.

Elements are addressed in logical order: index 0 is always the oldest element still held,
Len()-1 the newest, regardless of where they physically sit in the backing slice.
*/
package circularbuffer

import "fmt"

// Buffer is a circular buffer of at most Limit() elements.
// Create one using New
type Buffer[T any] struct {
	inner []T
	limit int
	// physical index of the oldest element once the buffer is full
	first int
}

// New creates an empty buffer holding at most limit elements.
// A limit below 1 is a programming error and panics.
func New[T any](limit int) *Buffer[T] {
	if limit < 1 {
		panic(fmt.Sprintf("circularbuffer: limit must be positive, got %v", limit))
	}

	return &Buffer[T]{
		inner: make([]T, 0, limit),
		limit: limit,
	}
}

// Push appends v as the newest element.
// Once the buffer is full the oldest element is evicted and returned with ok set.
func (b *Buffer[T]) Push(v T) (evicted T, ok bool) {
	if len(b.inner) < b.limit {
		b.inner = append(b.inner, v)
		return evicted, false
	}

	evicted = b.inner[b.first]
	b.inner[b.first] = v
	b.first++
	if b.first == b.limit {
		b.first = 0
	}

	return evicted, true
}

// Len is the number of elements currently held
func (b *Buffer[T]) Len() int {
	return len(b.inner)
}

// Limit is the capacity the buffer was created with
func (b *Buffer[T]) Limit() int {
	return b.limit
}

// IsFull is true once further pushes will evict
func (b *Buffer[T]) IsFull() bool {
	return len(b.inner) == b.limit
}

func (b *Buffer[T]) physical(i int) int {
	if i < 0 || i >= len(b.inner) {
		panic(fmt.Sprintf("circularbuffer: index %v out of range [0,%v)", i, len(b.inner)))
	}

	p := i + b.first
	if p >= b.limit {
		p -= b.limit
	}
	return p
}

// At returns the element at logical index i, 0 being the oldest.
// Panics if i is not in [0, Len())
func (b *Buffer[T]) At(i int) T {
	return b.inner[b.physical(i)]
}

// Set overwrites the element at logical index i
func (b *Buffer[T]) Set(i int, v T) {
	b.inner[b.physical(i)] = v
}

// Ascend calls fn for every element from oldest to newest, stopping early if fn returns false
func (b *Buffer[T]) Ascend(fn func(i int, v T) bool) {
	older, newer := b.AsSlices()
	for i, v := range older {
		if !fn(i, v) {
			return
		}
	}
	for i, v := range newer {
		if !fn(len(older)+i, v) {
			return
		}
	}
}

// AsSlices returns the contents as two slices which, concatenated, are in oldest to newest order.
// The slices alias the buffer storage and are only valid until the next Push.
func (b *Buffer[T]) AsSlices() (older, newer []T) {
	return b.inner[b.first:], b.inner[:b.first]
}

// ToSlice copies the contents, oldest first, into a new slice
func (b *Buffer[T]) ToSlice() []T {
	older, newer := b.AsSlices()
	result := make([]T, 0, len(older)+len(newer))
	result = append(result, older...)
	return append(result, newer...)
}

// Reset empties the buffer without releasing its storage
func (b *Buffer[T]) Reset() {
	b.inner = b.inner[:0]
	b.first = 0
}
