package vec

import (
	"fmt"
	"slices"
	"unsafe"
)

// Vec is a growable sequence of elements of type T.
//
// The buffer always spans the full capacity; only slots [0, Len()) are live.
// A zero Vec is a valid empty sequence with capacity 0.
type Vec[T any] struct {
	buf  []T // len(buf) == capacity
	size int // number of live slots
}

// New creates an empty sequence with room for initialCapacity elements.
// A negative capacity is treated as 0.
func New[T any](initialCapacity int) *Vec[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Vec[T]{buf: make([]T, initialCapacity)}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the current capacity in elements.
func (v *Vec[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// ElementSize returns the width of a single slot in bytes. For pointer-typed
// sequences this is the width of a pointer.
func (v *Vec[T]) ElementSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.Len())
	}
	return v.buf[i], nil
}

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, value T) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.Len())
	}
	v.buf[i] = value
	return nil
}

// Slice returns the live elements as a slice sharing the sequence's buffer.
// The view is invalidated by the next operation that grows the sequence.
func (v *Vec[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.buf[:v.size:v.size]
}

// Append copies value into the next free slot, doubling the capacity first
// if the sequence is full.
func (v *Vec[T]) Append(value T) {
	if v.size == len(v.buf) {
		v.grow(v.size + 1)
	}
	v.buf[v.size] = value
	v.size++
}

// InsertRange inserts src at position pos, shifting the elements at pos and
// after to the right. pos must be within [0, Len()]; otherwise
// ErrIndexOutOfBounds is returned and the sequence is left untouched.
func (v *Vec[T]) InsertRange(pos int, src ...T) error {
	if pos < 0 || pos > v.size {
		tracer().Errorf("vec: insert position %d out of bounds (size %d)", pos, v.size)
		return fmt.Errorf("%w: insert position %d, size %d", ErrIndexOutOfBounds, pos, v.size)
	}
	count := len(src)
	if count == 0 {
		return nil
	}
	if v.size+count > len(v.buf) {
		v.grow(v.size + count)
	} else {
		// src may be a view of our own buffer, which the shift would clobber
		src = slices.Clone(src)
	}
	copy(v.buf[pos+count:v.size+count], v.buf[pos:v.size])
	copy(v.buf[pos:], src)
	v.size += count
	return nil
}

// Compact condenses all elements for which removable reports false to the
// front of the sequence, preserving their relative order, and returns their
// count. Len() is not changed; clients finalize the removal with
//
//	v.EraseRange(n, v.Len())
func (v *Vec[T]) Compact(removable func(T) bool) int {
	if removable == nil {
		return v.Len()
	}
	w := 0
	for i := 0; i < v.size; i++ {
		if removable(v.buf[i]) {
			continue
		}
		if w != i {
			v.buf[w] = v.buf[i]
		}
		w++
	}
	return w
}

// EraseRange removes the elements [start, end), shifting the remainder to the
// left. Vacated slots are zeroed, releasing any pointers they held. An
// invalid range results in ErrInvalidRange and no mutation.
func (v *Vec[T]) EraseRange(start, end int) error {
	if start < 0 || start > v.size || end > v.size || start > end {
		tracer().Errorf("vec: invalid erase range [%d,%d) (size %d)", start, end, v.size)
		return fmt.Errorf("%w: [%d,%d), size %d", ErrInvalidRange, start, end, v.size)
	}
	if start == end {
		return nil
	}
	clear(v.buf[start:end])
	n := copy(v.buf[start:], v.buf[end:v.size])
	clear(v.buf[start+n : v.size])
	v.size -= end - start
	assert(v.size >= 0, "vec: negative size after erase")
	return nil
}

// Clear calls cleanup (if non-nil) for every live element, in index order,
// and then empties the sequence. Capacity is retained.
func (v *Vec[T]) Clear(cleanup func(T)) {
	v.sweep(cleanup)
	clear(v.buf[:v.size])
	v.size = 0
}

// Destroy calls cleanup (if non-nil) for every live element and releases the
// buffer. Afterwards the sequence is empty with capacity 0; it may be reused.
func (v *Vec[T]) Destroy(cleanup func(T)) {
	v.sweep(cleanup)
	v.buf = nil
	v.size = 0
}

func (v *Vec[T]) sweep(cleanup func(T)) {
	if cleanup == nil {
		return
	}
	for i := 0; i < v.size; i++ {
		cleanup(v.buf[i])
	}
}

// grow doubles the capacity until it can hold need elements.
func (v *Vec[T]) grow(need int) {
	c := len(v.buf)
	for c < need {
		if c == 0 {
			c = 1
		} else {
			c *= 2
		}
	}
	tracer().Debugf("vec: grow capacity %d -> %d", len(v.buf), c)
	buf := make([]T, c)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}
