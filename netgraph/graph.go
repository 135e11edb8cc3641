package netgraph

import (
	"fmt"

	"github.com/gopherrouting/ddpp/spectrum"
)

// Edge is one undirected connection between two vertices, carrying a
// positive weight (length) and the spectrum currently available on it.
// Two edges are the same edge iff they are the same *Edge: parallel
// edges between the same pair of vertices get distinct identity, which is
// exactly what the search core's edge-reuse check relies on.
type Edge struct {
	id     int64
	A, B   int
	Weight float64
	SU     spectrum.SU
}

// ID returns a stable, dense identity for the edge, assigned in the order
// edges were added to the graph.
func (e *Edge) ID() int64 {
	return e.id
}

// Other returns the endpoint of e that isn't v. It panics if v is not an
// endpoint of e; callers only ever call it with a vertex obtained from an
// Arc derived from e.
func (e *Edge) Other(v int) int {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		panic(fmt.Sprintf("netgraph: vertex %d is not an endpoint of edge %d", v, e.id))
	}
}

// Arc is one directed traversal of an Edge, as seen from OutEdges(v): it
// names the edge and the vertex it leads to from v.
type Arc struct {
	Edge *Edge
	To   int
}

// Graph is an undirected graph with dense integer vertex identities in
// [0, n), built incrementally with AddEdge. Parallel edges are permitted.
type Graph struct {
	adj   [][]Arc
	edges []*Edge
}

// New returns an empty Graph over n vertices, numbered [0, n).
func New(n int) *Graph {
	return &Graph{adj: make([][]Arc, n)}
}

// NumVertices returns n, the number of vertices the graph was built with.
func (g *Graph) NumVertices() int {
	return len(g.adj)
}

// OutEdges returns the arcs leaving v, i.e. every edge incident to v
// paired with the vertex it reaches.
func (g *Graph) OutEdges(v int) []Arc {
	return g.adj[v]
}

// Edges returns every edge in the graph, in the order they were added.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// AddEdge adds an undirected edge between a and b with the given weight
// and available spectrum, and returns it. Both endpoints must be in
// [0, NumVertices()) and weight must be positive.
func (g *Graph) AddEdge(a, b int, weight float64, su spectrum.SU) (*Edge, error) {
	if a < 0 || a >= len(g.adj) || b < 0 || b >= len(g.adj) {
		return nil, ErrVertexOutOfRange
	}
	if weight <= 0 {
		return nil, ErrNegativeWeight
	}

	e := &Edge{id: int64(len(g.edges)), A: a, B: b, Weight: weight, SU: su}
	g.edges = append(g.edges, e)
	g.adj[a] = append(g.adj[a], Arc{Edge: e, To: b})
	g.adj[b] = append(g.adj[b], Arc{Edge: e, To: a})

	return e, nil
}

// Filtered returns a view of g that behaves exactly like g except that
// OutEdges omits any arc whose edge is in excluded. It shares the
// underlying edges with g (a change to an edge's SU through g is visible
// through the view and vice versa), matching the edge-exclusion search's need for a cheap
// second pass over the same spectrum state.
func (g *Graph) Filtered(excluded map[*Edge]bool) *Graph {
	fg := &Graph{edges: g.edges, adj: make([][]Arc, len(g.adj))}
	for v, arcs := range g.adj {
		for _, a := range arcs {
			if !excluded[a.Edge] {
				fg.adj[v] = append(fg.adj[v], a)
			}
		}
	}
	return fg
}
