// Package search implements the core of the routing engine: the
// best-first pair-state Dijkstra search for two edge-disjoint,
// spectrum-feasible paths of minimum joint cost, its brute-force
// cross-checker, the tree-node tracer that reconstructs concrete paths,
// and the simpler edge-exclusion alternative.
//
// The search state is a pair of partial paths advancing simultaneously
// from the demand's source, recorded in a shared parent-pointer tree:
// every live priority-queue entry keeps its ancestor chain alive. The
// generic Dijkstra core prunes the tree with Pareto dominance on label
// pairs; the brute-force core builds the same tree without pruning, as a
// correctness oracle for small graphs.
package search
