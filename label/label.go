package label

import "github.com/gopherrouting/ddpp/spectrum"

// Label is the (cost, CU) pair associated with a partial path to a
// vertex: the cost accumulated so far, and the spectrum window still
// available to carry the demand on that path.
type Label struct {
	Cost float64
	CU   spectrum.CU
}

// New builds a Label.
func New(cost float64, cu spectrum.CU) Label {
	return Label{Cost: cost, CU: cu}
}

// Dominates reports whether l is at least as good as other on both
// dimensions: l.Cost <= other.Cost and l.CU fully contains other.CU. A
// dominated label can never lead to a better-or-equal solution than the
// label that dominates it.
func (l Label) Dominates(other Label) bool {
	return l.Cost <= other.Cost && l.CU.Includes(other.CU)
}

// Pair is a pair of labels, one per partial path of a protected
// connection, associated with a canonical vertex pair.
type Pair struct {
	L1, L2 Label
}

// NewPair builds a label Pair.
func NewPair(l1, l2 Label) Pair {
	return Pair{L1: l1, L2: l2}
}

// Dominates reports whether p is at least as good as other on both
// labels, component-wise.
func (p Pair) Dominates(other Pair) bool {
	return p.L1.Dominates(other.L1) && p.L2.Dominates(other.L2)
}

// Swap returns p with its two labels exchanged.
func (p Pair) Swap() Pair {
	return Pair{L1: p.L2, L2: p.L1}
}
