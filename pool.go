package staticvec

import "sync"

// Pool recycles vectors of a single fixed capacity so steady-state use
// allocates nothing. Get and Put are safe for concurrent use; the
// vectors themselves remain single-threaded values.
type Pool[T any] struct {
	capacity int
	pool     sync.Pool
}

// NewPool returns a pool handing out empty vectors of the given
// capacity. Panics if capacity is negative.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{capacity: capacity}
	p.pool.New = func() any {
		v := New[T](capacity)
		return &v
	}
	return p
}

// Get returns an empty vector with the pool's capacity.
func (p *Pool[T]) Get() *Vector[T] {
	return p.pool.Get().(*Vector[T])
}

// Put clears v, dropping any element references, and returns it to the
// pool. Vectors of a different capacity are discarded rather than
// pooled.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil || v.Cap() != p.capacity {
		return
	}
	v.Clear()
	p.pool.Put(v)
}

// Cap returns the capacity of the vectors this pool manages.
func (p *Pool[T]) Cap() int { return p.capacity }
