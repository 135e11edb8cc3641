// Package netgraph defines the graph the search core runs over: an
// undirected graph, built with dense integer vertex identities, whose
// edges carry a positive weight and a spectrum.SU of currently available
// slots. Parallel edges between the same pair of vertices are supported
// and distinguished by identity.
package netgraph
