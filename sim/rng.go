package sim

import "math/rand"

// exponential draws a value from an exponential distribution with mean
// mean, using rng. Go's standard library has no exponential sampler
// with a plain mean parameter, so this takes rng.ExpFloat64's own
// rate-1 distribution and scales it by mean.
func exponential(rng *rand.Rand, mean float64) float64 {
	return rng.ExpFloat64() * mean
}

// exponentialUnits draws a positive integer number of units from an
// exponential distribution with mean mnu, rounded to the nearest unit
// and floored at 1.
func exponentialUnits(rng *rand.Rand, mnu float64) int {
	n := int(exponential(rng, mnu) + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
