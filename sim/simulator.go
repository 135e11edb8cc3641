package sim

import (
	"container/heap"
	"math/rand"

	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/search"
	"github.com/gopherrouting/ddpp/units"
)

// Simulator is a functional-options-configured discrete-event runner:
// it drives connection arrivals against a network, routes each with the
// search package, holds allocated spectrum for a random duration, and
// releases it on departure.
type Simulator struct {
	graph      *netgraph.Graph
	model      units.Model
	algorithm  search.Algorithm
	population Population
	ol         float64
	mht        float64
	mnu        float64
	rng        *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed seeds the simulator's random number generator. The default
// seed is 1, matching the original traffic generator's default.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithAlgorithm selects which search core routes each arrival. If both
// GD and EE are set, GD's path is used to establish the connection.
func WithAlgorithm(alg search.Algorithm) Option {
	return func(s *Simulator) { s.algorithm = alg }
}

// New returns a Simulator over g, routing with model, generating
// arrivals at offered load ol, mean holding time mht, and mean number
// of units mnu, with src/dst pairs drawn from the named population.
func New(g *netgraph.Graph, model units.Model, ol, mht, mnu float64, population Population, opts ...Option) *Simulator {
	s := &Simulator{
		graph:      g,
		model:      model,
		algorithm:  search.GD,
		population: population,
		ol:         ol,
		mht:        mht,
		mnu:        mnu,
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result collects the raw per-arrival outcomes of a simulation run, for
// the stats package to summarize.
type Result struct {
	Arrivals         int
	Blocked          int
	AcceptedJointCost []float64
}

// Run drives the simulator through exactly n arrivals, plus whatever
// departures those arrivals' holding times generate, and returns the
// raw outcomes observed.
//
// A GD/BF cross-check mismatch is fatal: it means the generic Dijkstra
// search and the brute-force oracle disagree on a connection that was
// actually established, which the search package's own correctness
// invariant says should never happen. Run aborts the simulation and
// returns the mismatch rather than silently counting the connection as
// blocked, mirroring the original simulator's routing::set_up, which
// calls abort() on the same disagreement.
func (s *Simulator) Run(n int) (Result, error) {
	res := Result{}
	interarrivalMean := s.mht / s.ol

	pq := &eventQueue{}
	heap.Init(pq)
	heap.Push(pq, &event{time: exponential(s.rng, interarrivalMean), kind: arrivalEvent})

	for pq.Len() > 0 && res.Arrivals < n {
		ev := heap.Pop(pq).(*event)

		switch ev.kind {
		case arrivalEvent:
			res.Arrivals++
			heap.Push(pq, &event{time: ev.time + exponential(s.rng, interarrivalMean), kind: arrivalEvent})

			src, dst := s.population(s.rng, s.graph.NumVertices())
			demand := netgraph.Demand{Src: src, Dst: dst, NCU: exponentialUnits(s.rng, s.mnu)}

			outcome, jointCost, ok, err := s.route(demand)
			if err != nil {
				return res, err
			}
			if !ok {
				res.Blocked++
				continue
			}

			conn := s.reserve(demand, outcome)
			res.AcceptedJointCost = append(res.AcceptedJointCost, jointCost)
			heap.Push(pq, &event{time: ev.time + exponential(s.rng, s.mht), kind: departureEvent, conn: conn})

		case departureEvent:
			ev.conn.release()
		}
	}

	return res, nil
}

// route runs the configured search and returns the path pair the
// connection should actually use: GD's when both GD and EE were
// requested, matching the original simulator's tie-break. It returns
// an error only for search.ErrCrossCheckMismatch, which Run treats as
// fatal.
func (s *Simulator) route(d netgraph.Demand) (search.PathPair, float64, bool, error) {
	res, err := search.Run(s.graph, d, s.model, s.algorithm)
	if err != nil {
		return search.PathPair{}, 0, false, err
	}
	if res.GD != nil {
		return res.GD.Paths, res.GD.JointCost, res.GD.Found, nil
	}
	if res.EE != nil {
		return res.EE.Paths, res.EE.JointCost, res.EE.Found, nil
	}
	return search.PathPair{}, 0, false, nil
}

// reserve commits a path pair's first-fit spectrum assignment: each
// path gets one contiguous block, the same block on every edge it
// crosses, sized by the units the path's own cost requires.
func (s *Simulator) reserve(d netgraph.Demand, paths search.PathPair) *connection {
	conn := &connection{}
	for _, p := range []search.CUPath{paths.Path1, paths.Path2} {
		n := s.model.Units(d.NCU, p.Cost)
		alloc := p.Allocate(n)
		for _, e := range p.Edges {
			e.SU.Remove(alloc)
			conn.reservations = append(conn.reservations, reservation{edge: e, cu: alloc})
		}
	}
	return conn
}
