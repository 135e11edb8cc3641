package search

import (
	"github.com/gopherrouting/ddpp/label"
	"github.com/gopherrouting/ddpp/netgraph"
)

// Trace walks the parent chain from a terminal tree node back to (but
// excluding) the root, splitting the edges it finds between the two
// logical paths they belong to.
//
// Each step carries exactly one new edge, attached to whichever of the
// two canonical slots NewIsL1 marks as just-extended; the other slot is
// an unchanged copy of one of the parent's two slots. Which one is not
// fixed by position, because canonicalize can reorder slots at any step,
// so at every step we re-derive the correspondence by matching the
// current constant slot's vertex and label against both of the parent's
// slots before deciding which logical path keeps which slot going
// forward.
func Trace(goal *TreeNode) PathPair {
	var edges1, edges2 []*netgraph.Edge
	slot1IsL1 := true
	slot2IsL1 := false

	for cur := goal; cur.Parent != nil; cur = cur.Parent {
		constIsL1 := !cur.NewIsL1
		constVertex := cur.vertexOf(constIsL1)
		constLabel := cur.labelOf(constIsL1)
		parent := cur.Parent

		parentSlotForConstant := sameState(parent, true, constVertex, constLabel)
		if !parentSlotForConstant && !sameState(parent, false, constVertex, constLabel) {
			// Neither parent slot matches exactly; this should not
			// happen for a tree actually built by relax, but falling
			// back to the L1 slot keeps Trace total rather than
			// panicking on a malformed tree.
			parentSlotForConstant = true
		}
		parentSlotForExtended := !parentSlotForConstant

		slot1IsL1 = advance(slot1IsL1, constIsL1, parentSlotForConstant, parentSlotForExtended, cur.Edge, &edges1)
		slot2IsL1 = advance(slot2IsL1, constIsL1, parentSlotForConstant, parentSlotForExtended, cur.Edge, &edges2)
	}

	reverseEdges(edges1)
	reverseEdges(edges2)

	return PathPair{
		Path1: CUPath{Edges: edges1, Cost: goal.LP.L1.Cost, CU: goal.LP.L1.CU},
		Path2: CUPath{Edges: edges2, Cost: goal.LP.L2.Cost, CU: goal.LP.L2.CU},
	}
}

func sameState(n *TreeNode, isL1 bool, vertex int, l label.Label) bool {
	if n.vertexOf(isL1) != vertex {
		return false
	}
	other := n.labelOf(isL1)
	return other.Cost == l.Cost && other.CU == l.CU
}

func advance(slotIsL1, constIsL1, parentConst, parentExtended bool, edge *netgraph.Edge, out *[]*netgraph.Edge) bool {
	if slotIsL1 == constIsL1 {
		return parentConst
	}
	*out = append(*out, edge)
	return parentExtended
}

func reverseEdges(es []*netgraph.Edge) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}
