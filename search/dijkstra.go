package search

import (
	"container/heap"
	"math"
	"weak"

	"github.com/gopherrouting/ddpp/label"
	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/units"
)

// jointCost is the priority the search minimizes: the sum, over both
// partial paths, of that path's cost weighted by the number of spectrum
// units it requires at its own accumulated cost. A label pair that would
// require an infeasible number of units on either side has infinite
// joint cost and is never admissible.
func jointCost(lp label.Pair, ncu int, model units.Model) float64 {
	u1 := model.Units(ncu, lp.L1.Cost)
	u2 := model.Units(ncu, lp.L2.Cost)
	if u1 == units.Infeasible || u2 == units.Infeasible {
		return math.Inf(1)
	}
	return lp.L1.Cost*float64(u1) + lp.L2.Cost*float64(u2)
}

// stateEntry pairs a label pair with the tree node that realizes it, so
// a dominance check against an open set can still reach the node's
// ancestry if it survives.
type stateEntry struct {
	LP   label.Pair
	Node *TreeNode
}

func dominatedByAny(entries []stateEntry, lp label.Pair) bool {
	for _, e := range entries {
		if e.LP.Dominates(lp) {
			return true
		}
	}
	return false
}

// pruneDominated drops every entry that lp dominates, closing their
// nodes, and returns the surviving entries.
func pruneDominated(entries []stateEntry, lp label.Pair) []stateEntry {
	out := entries[:0]
	for _, e := range entries {
		if lp.Dominates(e.LP) {
			e.Node.Closed = true
			continue
		}
		out = append(out, e)
	}
	return out
}

func removeNode(entries []stateEntry, node *TreeNode) ([]stateEntry, bool) {
	for i, e := range entries {
		if e.Node == node {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

// relax extends the frontier at node by one edge on one side, trying
// both partial paths in turn. A side already sitting at dst is never
// extended: wandering past the destination can only add cost on that
// side, so it can never newly dominate anything. Every feasible
// spectrum sub-interval wide enough to carry the demand yields its own
// candidate child.
func relax(node *TreeNode, g *netgraph.Graph, model units.Model, ncu int, dst int) []*TreeNode {
	var out []*TreeNode
	if node.vertexOf(true) != dst {
		out = append(out, relaxSide(node, g, model, ncu, true)...)
	}
	if node.vertexOf(false) != dst {
		out = append(out, relaxSide(node, g, model, ncu, false)...)
	}
	return out
}

func relaxSide(node *TreeNode, g *netgraph.Graph, model units.Model, ncu int, varyIsL1 bool) []*TreeNode {
	vVary := node.vertexOf(varyIsL1)
	lVary := node.labelOf(varyIsL1)
	vConst := node.vertexOf(!varyIsL1)
	lConst := node.labelOf(!varyIsL1)

	var out []*TreeNode
	for _, arc := range g.OutEdges(vVary) {
		e := arc.Edge
		if node.usesEdge(e) {
			continue
		}
		newCost := lVary.Cost + e.Weight
		u := model.Units(ncu, newCost)
		if u == units.Infeasible {
			continue
		}
		avail := e.SU.IntersectCU(lVary.CU)
		avail.RemoveNarrowerThan(u)
		for _, ci := range avail.Intervals() {
			lNew := label.New(newCost, ci)
			vp, lp, swapped := canonicalize(vConst, e.Other(vVary), lConst, lNew)
			out = append(out, &TreeNode{
				Parent:  node,
				VP:      vp,
				LP:      lp,
				NewIsL1: swapped,
				Edge:    e,
			})
		}
	}
	return out
}

// GenericDijkstra searches for a minimum joint-cost pair of edge-disjoint,
// spectrum-feasible paths between d.Src and d.Dst, pruning the frontier
// with Pareto dominance on label pairs at each canonical vertex pair.
func GenericDijkstra(g *netgraph.Graph, d netgraph.Demand, model units.Model) (PathPair, float64, bool) {
	root := newRoot(d.Src)
	goal := VertexPair{V1: d.Dst, V2: d.Dst}

	S := map[VertexPair][]stateEntry{}
	T := map[VertexPair][]stateEntry{}

	pq := &weakQueue{}
	heap.Init(pq)
	push := func(n *TreeNode) {
		heap.Push(pq, weakItem{ptr: weak.Make(n), priority: jointCost(n.LP, d.NCU, model)})
	}

	T[root.VP] = append(T[root.VP], stateEntry{LP: root.LP, Node: root})
	push(root)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(weakItem)
		node := item.ptr.Value()
		if node == nil || node.Closed {
			continue
		}

		remaining, ok := removeNode(T[node.VP], node)
		if !ok {
			continue
		}
		T[node.VP] = remaining
		node.Closed = true
		S[node.VP] = append(S[node.VP], stateEntry{LP: node.LP, Node: node})

		if node.VP == goal {
			return Trace(node), item.priority, true
		}

		for _, child := range relax(node, g, model, d.NCU, d.Dst) {
			if dominatedByAny(S[child.VP], child.LP) || dominatedByAny(T[child.VP], child.LP) {
				continue
			}
			S[child.VP] = pruneDominated(S[child.VP], child.LP)
			T[child.VP] = pruneDominated(T[child.VP], child.LP)
			T[child.VP] = append(T[child.VP], stateEntry{LP: child.LP, Node: child})
			push(child)
		}
	}

	return PathPair{}, 0, false
}
