package search

import (
	"container/heap"

	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/units"
)

// BruteForce rebuilds the same pair-state tree as GenericDijkstra but
// without dominance pruning, so every edge-disjoint, spectrum-feasible
// extension is queued, and it stops at the first goal state popped,
// whose joint cost is minimal. It is a correctness oracle: on
// graphs small enough to afford the unpruned search, its joint cost must
// agree with GenericDijkstra's.
func BruteForce(g *netgraph.Graph, d netgraph.Demand, model units.Model) (PathPair, float64, bool) {
	root := newRoot(d.Src)
	goal := VertexPair{V1: d.Dst, V2: d.Dst}

	pq := &strongQueue{}
	heap.Init(pq)
	push := func(n *TreeNode) {
		heap.Push(pq, strongItem{node: n, priority: jointCost(n.LP, d.NCU, model)})
	}
	push(root)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(strongItem)
		node := item.node

		if node.VP == goal {
			return Trace(node), item.priority, true
		}

		for _, child := range relax(node, g, model, d.NCU, d.Dst) {
			push(child)
		}
	}

	return PathPair{}, 0, false
}
