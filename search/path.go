package search

import (
	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/spectrum"
)

// CUPath is one concrete partial or complete path: an ordered sequence
// of edges from a demand's source, the accumulated cost of traversing
// them, and a contiguous spectrum block still free across every edge on
// the path (one of the feasible blocks, not necessarily the widest). Final spectrum allocation narrows CU to exactly the
// units the path needs, at its lowest-numbered units.
type CUPath struct {
	Edges []*netgraph.Edge
	Cost  float64
	CU    spectrum.CU
}

// Allocate returns the first-fit assignment of n spectrum units within
// the path's available CU: [CU.Min, CU.Min+n).
func (p CUPath) Allocate(n int) spectrum.CU {
	return spectrum.NewCU(p.CU.Min, p.CU.Min+n)
}

// PathPair is the two edge-disjoint paths returned for a demand.
type PathPair struct {
	Path1, Path2 CUPath
}
