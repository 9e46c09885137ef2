// Package seqlog carries the structured diagnostics of the query engine.
// It is a thin wrapper over zerolog: a Config, a constructor, and a process
// default that terminal operators report non-fatal events through (for
// example duplicate-key warnings during map materialization). Nothing in the
// per-element hot path logs.
package seqlog
