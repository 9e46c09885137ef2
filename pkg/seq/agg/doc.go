// Package agg holds the terminal operators: single-pass reductions and
// materializers that actually drive a pipeline. Synchronous terminals fail
// with ErrModeMismatch when handed an Async sequence; ToArrayAsync drains
// either mode sequentially under a context.
//
// Key operations:
// - Count, Sum, Average, Max, Min: full-pass reductions
// - All, Any, Contains, First: short-circuiting probes
// - ToArray, ToArrayAsync, ToSet, ToMap: materializers
//
// Optional predicates and selectors are trailing variadics; only the first
// one is used. With no selector, Sum and Average coerce elements to float64
// best-effort; values that do not convert contribute NaN rather than an
// error.
package agg
