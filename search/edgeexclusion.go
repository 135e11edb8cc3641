package search

import (
	"container/heap"
	"math"

	"github.com/gopherrouting/ddpp/label"
	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/spectrum"
	"github.com/gopherrouting/ddpp/units"
)

// EdgeExclusion finds a working path with an ordinary single-path
// Dijkstra, then searches again on the graph with that path's edges
// removed for a disjoint protection path. It is cheaper than
// GenericDijkstra but the two paths it returns are not guaranteed
// jointly optimal, so it is never cross-checked against BruteForce.
func EdgeExclusion(g *netgraph.Graph, d netgraph.Demand, model units.Model) (PathPair, float64, bool) {
	p1, ok := singlePath(g, d.Src, d.Dst, d.NCU, model)
	if !ok {
		return PathPair{}, 0, false
	}

	excluded := make(map[*netgraph.Edge]bool, len(p1.Edges))
	for _, e := range p1.Edges {
		excluded[e] = true
	}

	p2, ok := singlePath(g.Filtered(excluded), d.Src, d.Dst, d.NCU, model)
	if !ok {
		return PathPair{}, 0, false
	}

	lp := label.NewPair(label.New(p1.Cost, p1.CU), label.New(p2.Cost, p2.CU))
	return PathPair{Path1: p1, Path2: p2}, jointCost(lp, d.NCU, model), true
}

type spNode struct {
	Parent *spNode
	V      int
	L      label.Label
	Edge   *netgraph.Edge
}

func (n *spNode) usesEdge(e *netgraph.Edge) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Edge == e {
			return true
		}
	}
	return false
}

type spItem struct {
	node     *spNode
	priority float64
}

type spQueue []spItem

func (q spQueue) Len() int            { return len(q) }
func (q spQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q spQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *spQueue) Push(x interface{}) { *q = append(*q, x.(spItem)) }
func (q *spQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func spPriority(l label.Label, ncu int, model units.Model) float64 {
	u := model.Units(ncu, l.Cost)
	if u == units.Infeasible {
		return math.Inf(1)
	}
	return l.Cost * float64(u)
}

// singlePath is a plain label-setting Dijkstra over a single path's
// (cost, available spectrum) state, pruned by the same dominance rule as
// label pairs but applied to one label at a time.
func singlePath(g *netgraph.Graph, src, dst, ncu int, model units.Model) (CUPath, bool) {
	full := spectrum.CU{Min: 0, Max: math.MaxInt32}
	root := &spNode{V: src, L: label.New(0, full)}

	best := map[int][]label.Label{}
	pq := &spQueue{}
	heap.Init(pq)
	push := func(n *spNode) {
		heap.Push(pq, spItem{node: n, priority: spPriority(n.L, ncu, model)})
	}
	push(root)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(spItem)
		n := item.node

		dominated := false
		for _, l := range best[n.V] {
			if l.Dominates(n.L) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		survivors := best[n.V][:0]
		for _, l := range best[n.V] {
			if !n.L.Dominates(l) {
				survivors = append(survivors, l)
			}
		}
		best[n.V] = append(survivors, n.L)

		if n.V == dst {
			return buildCUPath(n), true
		}

		for _, arc := range g.OutEdges(n.V) {
			e := arc.Edge
			if n.usesEdge(e) {
				continue
			}
			newCost := n.L.Cost + e.Weight
			u := model.Units(ncu, newCost)
			if u == units.Infeasible {
				continue
			}
			avail := e.SU.IntersectCU(n.L.CU)
			avail.RemoveNarrowerThan(u)
			for _, ci := range avail.Intervals() {
				push(&spNode{Parent: n, V: e.Other(n.V), L: label.New(newCost, ci), Edge: e})
			}
		}
	}

	return CUPath{}, false
}

func buildCUPath(n *spNode) CUPath {
	var edges []*netgraph.Edge
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		edges = append(edges, cur.Edge)
	}
	reverseEdges(edges)
	return CUPath{Edges: edges, Cost: n.L.Cost, CU: n.L.CU}
}
