// Package keys derives the default cache/equivalence key for an element: a
// canonical, deterministic structural encoding. It backs every operator that
// compares elements without an explicit key selector (distinct, union,
// intersect, contains, default memoization).
//
// Primitives encode as a type-tagged literal. Composite values encode as JSON,
// which is order-sensitive over struct fields (declaration order) and sorts
// map keys, so the encoding is stable across runs for the same shape.
//
// Limitations, surfaced rather than hidden: cyclic or otherwise unencodable
// values make Canonical return the encoding error, which fails the pull that
// needed the key. Callers working with composite elements are expected to
// supply an explicit key selector (the *By operator variants), which bypasses
// this package entirely.
package keys
