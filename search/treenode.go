package search

import (
	"math"

	"github.com/gopherrouting/ddpp/label"
	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/spectrum"
)

// TreeNode is one step of the pair-state search, held alive by a strong
// Parent pointer from every descendant. The priority queue itself only
// ever holds a weak or strong reference to the frontier nodes it created;
// once a node is dominated it is dropped from the open sets and, if no
// descendant survives to keep it rooted, the garbage collector reclaims
// it without the queue needing to know.
type TreeNode struct {
	Parent *TreeNode
	VP     VertexPair
	LP     label.Pair

	// NewIsL1 says which canonical slot of LP was produced by extending
	// a path at this step. The other slot is an unchanged copy of the
	// parent's matching slot. It is meaningless on the root.
	NewIsL1 bool

	// Edge is the edge consumed to reach this step, nil only at the root.
	Edge *netgraph.Edge

	// Closed marks a node that has been finalized (moved to the
	// permanent set) or superseded by a dominating label pair at the
	// same vertex pair; a stale queue entry for a closed node is
	// discarded on pop.
	Closed bool
}

// newRoot returns the tree's root: both partial paths sitting at src with
// zero cost and the full, unconstrained spectrum.
func newRoot(src int) *TreeNode {
	full := spectrum.CU{Min: 0, Max: math.MaxInt32}
	l := label.New(0, full)
	return &TreeNode{VP: VertexPair{V1: src, V2: src}, LP: label.NewPair(l, l)}
}

func (n *TreeNode) vertexOf(isL1 bool) int {
	if isL1 {
		return n.VP.V1
	}
	return n.VP.V2
}

func (n *TreeNode) labelOf(isL1 bool) label.Label {
	if isL1 {
		return n.LP.L1
	}
	return n.LP.L2
}

// usesEdge reports whether e already appears somewhere on the path from
// the root to n, on either partial path. Both partial paths of a demand
// must be edge-disjoint, and a single partial path must never revisit an
// edge, so relax consults this before extending along e.
func (n *TreeNode) usesEdge(e *netgraph.Edge) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Edge == e {
			return true
		}
	}
	return false
}
