package netgraph

// Demand requests ncu contiguous units, at the reference modulation,
// between Src and Dst. The actual number of units a given path must
// carry depends on that path's cost via the adaptive-units model.
type Demand struct {
	Src, Dst int
	NCU      int
}

// Validate rejects malformed demands: a self-loop (Src == Dst) or vertex
// identities outside the graph's range.
func (d Demand) Validate(g *Graph) error {
	if d.Src == d.Dst {
		return ErrSelfLoopDemand
	}
	n := g.NumVertices()
	if d.Src < 0 || d.Src >= n || d.Dst < 0 || d.Dst >= n {
		return ErrVertexOutOfRange
	}
	return nil
}
