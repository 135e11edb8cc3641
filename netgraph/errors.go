package netgraph

import "errors"

// Sentinel errors returned by the netgraph package and validated by its
// callers. Callers should use errors.Is to branch on semantics.
var (
	// ErrVertexOutOfRange indicates a vertex identity outside [0, n).
	ErrVertexOutOfRange = errors.New("netgraph: vertex out of range")

	// ErrNegativeWeight indicates an edge weight that is not strictly
	// positive.
	ErrNegativeWeight = errors.New("netgraph: edge weight must be positive")

	// ErrSelfLoopDemand indicates a demand whose source equals its
	// destination.
	ErrSelfLoopDemand = errors.New("netgraph: demand source equals destination")
)
