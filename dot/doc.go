// Package dot loads a network topology from a small subset of the
// Graphviz DOT language: an undirected graph literal whose edges carry
// a weight and an available-spectrum attribute.
//
//	graph topology {
//		0 -- 1 [weight=5, su="0-8"];
//		1 -- 2 [weight=3, su="0-4,6-10"];
//	}
//
// Vertices are dense integers in [0, n); n is inferred from the highest
// vertex identity mentioned by any edge. weight is a positive float.
// su is a comma-separated list of half-open integer intervals, each
// written lo-hi, giving the contiguous units free on that edge.
package dot
