package sim

import (
	"fmt"
	"math/rand"
)

// Population picks a source/destination pair for a new arrival, given
// the number of vertices in the network.
type Population func(rng *rand.Rand, n int) (src, dst int)

// Populations names the traffic patterns Lookup accepts.
var Populations = map[string]Population{
	"uniform": uniformPopulation,
}

// Lookup resolves a population name to its generator, as named on the
// simulator's --population flag.
func Lookup(name string) (Population, error) {
	p, ok := Populations[name]
	if !ok {
		return nil, fmt.Errorf("sim: unknown population %q", name)
	}
	return p, nil
}

// uniformPopulation picks src and dst independently and uniformly among
// the network's vertices, resampling dst until it differs from src.
func uniformPopulation(rng *rand.Rand, n int) (int, int) {
	src := rng.Intn(n)
	dst := rng.Intn(n)
	for dst == src {
		dst = rng.Intn(n)
	}
	return src, dst
}
