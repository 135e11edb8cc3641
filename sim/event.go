package sim

import (
	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/spectrum"
)

type eventKind int

const (
	arrivalEvent eventKind = iota
	departureEvent
)

// reservation is one edge's worth of spectrum held by a connection,
// returned to the edge's available SU when the connection departs.
type reservation struct {
	edge *netgraph.Edge
	cu   spectrum.CU
}

// connection records what a successfully routed demand reserved, so its
// departure event can give the spectrum back.
type connection struct {
	reservations []reservation
}

func (c *connection) release() {
	for _, r := range c.reservations {
		r.edge.SU.Insert(r.cu)
	}
}

type event struct {
	time float64
	kind eventKind
	conn *connection
}

// eventQueue is a container/heap priority queue of simulation events,
// ordered earliest time first.
type eventQueue []*event

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return q[i].time < q[j].time }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }
func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
