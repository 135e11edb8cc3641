package units

import "math"

// Infeasible is the sentinel unit count returned for a path whose cost
// exceeds the model's maximum reach multiple. It compares larger than any
// unit count a real path can require, so callers that feed it into
// spectrum.SU.RemoveNarrowerThan correctly discard every candidate
// interval.
const Infeasible = math.MaxInt32

// maxReachMultiples bounds how far the model will stretch the reference
// reach before declaring a path infeasible. The current model allows a
// path to cost up to four times the reference reach.
const maxReachMultiples = 4

// Model is the adaptive-units model, parameterized by a reference reach.
// It is a plain value, passed explicitly to every search run rather than
// held as global state.
type Model struct {
	// Reach is the reference modulation reach: the maximum path cost at
	// which ncu units suffice. Reach must be positive.
	Reach float64
}

// Units returns the number of contiguous units a path of the given cost
// must carry to satisfy a demand for ncu reference units. A zero cost
// always costs ncu units. A cost beyond four reach-multiples is
// infeasible.
func (m Model) Units(ncu int, cost float64) int {
	if cost == 0 {
		return ncu
	}
	if cost > m.Reach*maxReachMultiples {
		return Infeasible
	}

	multiple := int(math.Ceil(cost / m.Reach))

	return ncu * multiple
}
