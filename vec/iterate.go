package vec

import "iter"

// All returns an iterator over index/element pairs in index order.
//
// The iterator reads the sequence lazily and may be restarted; it reflects
// the state of the sequence at the time each element is visited.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the last
// element to the first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
