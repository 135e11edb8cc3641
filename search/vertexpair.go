package search

import "github.com/gopherrouting/ddpp/label"

// VertexPair is a canonical pair of vertices (V1 <= V2), one per partial
// path of a protected connection. Label pairs stored against a
// VertexPair are reordered to match: Lᵢ belongs to the path ending at
// Vᵢ.
type VertexPair struct {
	V1, V2 int
}

// canonicalize builds the canonical vertex pair and label pair for a
// frontier state reached by holding vConst's label fixed and extending
// the other side to vNew with lNew. It swaps both the vertices and their
// labels when vConst > vNew, or when vConst == vNew and lConst does not
// already precede lNew in the dominance order; the returned bool records
// whether a swap occurred, which the tracer later needs to tell which
// side of the pair this step actually extended.
func canonicalize(vConst, vNew int, lConst, lNew label.Label) (VertexPair, label.Pair, bool) {
	vp := VertexPair{V1: vConst, V2: vNew}
	lp := label.NewPair(lConst, lNew)

	switch {
	case vConst > vNew:
		vp = VertexPair{V1: vNew, V2: vConst}
		return vp, lp.Swap(), true
	case vConst == vNew && !lConst.Dominates(lNew):
		return vp, lp.Swap(), true
	default:
		return vp, lp, false
	}
}
