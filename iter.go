package staticvec

import "iter"

// All returns an iterator over index/element pairs in the live range,
// in ascending index order. The sequence covers the live extent as of
// the call; like Data, it is invalidated by size-changing mutation.
// Fresh calls yield fresh, independent sequences.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	live := v.data
	return func(yield func(int, T) bool) {
		for i, value := range live {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs in descending
// index order.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	live := v.data
	return func(yield func(int, T) bool) {
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	live := v.data
	return func(yield func(T) bool) {
		for _, value := range live {
			if !yield(value) {
				return
			}
		}
	}
}
