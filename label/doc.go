// Package label defines the (cost, CU) label attached to a partial path,
// the label pair attached to a search-tree state, and the dominance
// relation between them that drives pruning in the generic Dijkstra core.
package label
