// Package staticvec implements a fixed-capacity vector: an ordered
// container of up to N elements whose storage is allocated exactly once
// at construction and never grows. It targets latency-sensitive and
// allocation-free code paths where the element bound is known up front,
// with validated and unchecked access tiers, index-order iteration, and
// lexicographic comparison.
//
// A Vector is a plain single-threaded value type with no internal
// synchronization. Concurrent reads are safe only while no goroutine
// mutates; concurrent mutation requires external coordination. The Pool
// type layers sync.Pool on top for allocation-free reuse of vectors
// across hot paths.
package staticvec
