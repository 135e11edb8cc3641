package search

import (
	"errors"
	"math"

	"github.com/gopherrouting/ddpp/netgraph"
	"github.com/gopherrouting/ddpp/units"
)

// Algorithm selects which search cores Run exercises for a demand.
type Algorithm int

const (
	GD Algorithm = 1 << iota
	BF
	EE
)

// ErrCrossCheckMismatch is returned when GD and BF were both requested
// and disagree on whether a demand is routable, or on its joint cost.
var ErrCrossCheckMismatch = errors.New("search: generic dijkstra and brute force disagree")

// Outcome is one algorithm's answer for a demand.
type Outcome struct {
	Paths     PathPair
	JointCost float64
	Found     bool
}

// Result collects the outcome of every algorithm Run was asked to run.
type Result struct {
	GD, BF, EE *Outcome
}

// Run searches g for d's demand with every algorithm named in algs. If
// both GD and BF were requested, it cross-checks their answers and
// returns ErrCrossCheckMismatch on disagreement; callers that treat this
// as fatal should abort rather than trust either result.
func Run(g *netgraph.Graph, d netgraph.Demand, model units.Model, algs Algorithm) (Result, error) {
	var res Result

	if algs&GD != 0 {
		paths, cost, found := GenericDijkstra(g, d, model)
		res.GD = &Outcome{Paths: paths, JointCost: cost, Found: found}
	}
	if algs&BF != 0 {
		paths, cost, found := BruteForce(g, d, model)
		res.BF = &Outcome{Paths: paths, JointCost: cost, Found: found}
	}
	if algs&EE != 0 {
		paths, cost, found := EdgeExclusion(g, d, model)
		res.EE = &Outcome{Paths: paths, JointCost: cost, Found: found}
	}

	if res.GD != nil && res.BF != nil {
		if res.GD.Found != res.BF.Found {
			return res, ErrCrossCheckMismatch
		}
		if res.GD.Found && !closeEnough(res.GD.JointCost, res.BF.JointCost) {
			return res, ErrCrossCheckMismatch
		}
	}

	return res, nil
}

func closeEnough(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps
}
