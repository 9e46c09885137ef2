// Package order sorts sequences by a derived key, ascending or descending.
//
// The algorithm is a three-way partition sort: the upstream is materialized
// at first pull, then partitioned around the last element's key into
// strictly-before, equal and strictly-after buckets, the outer buckets sorted
// the same way, and the results concatenated. The equal bucket keeps its
// original relative order, so ties are stable. Partitioning runs on an
// explicit work stack rather than recursion, so large inputs cannot exhaust
// the goroutine stack.
//
// Comparisons average O(n log n); the worst case is O(n^2) when pivots
// repeatedly fail to split the input (all-equal keys, adversarial order).
// That trade-off is accepted for the simplicity of the algorithm.
package order
