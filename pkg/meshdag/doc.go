// Package meshdag builds a hierarchical, view-dependent level-of-detail
// DAG from a raw indexed triangle mesh: leaf clustering, iterative
// group -> simplify -> split construction, and the invariants that make
// runtime cluster selection crack-free.
//
// The build is single-threaded and pure: identical input plus identical
// Config produces an identical DAG. The DAG is write-once; once Build
// returns, clusters and groups are never mutated, only read.
package meshdag
