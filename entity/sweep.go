package entity

import (
	"github.com/npillmayer/arcade/vec"
)

// Sweep removes every element of v for which removable reports true,
// keeping the survivors in their original order. It returns the number of
// elements removed.
func Sweep[T any](v *vec.Vec[T], removable func(T) bool) int {
	size := v.Len()
	n := v.Compact(removable)
	if n == size {
		return 0
	}
	if err := v.EraseRange(n, size); err != nil {
		// Compact never reports more than Len() survivors
		tracer().Errorf("entity: sweep: %v", err)
		return 0
	}
	return size - n
}
