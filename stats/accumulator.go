package stats

import "gonum.org/v1/gonum/stat"

// Accumulator collects unweighted float64 samples and summarizes them
// on demand.
type Accumulator struct {
	samples []float64
}

// Add records one more sample.
func (a *Accumulator) Add(x float64) {
	a.samples = append(a.samples, x)
}

// AddAll records every sample in xs.
func (a *Accumulator) AddAll(xs []float64) {
	a.samples = append(a.samples, xs...)
}

// Count returns the number of samples recorded so far.
func (a *Accumulator) Count() int {
	return len(a.samples)
}

// Mean returns the sample mean, or zero if no samples were recorded.
func (a *Accumulator) Mean() float64 {
	if len(a.samples) == 0 {
		return 0
	}
	return stat.Mean(a.samples, nil)
}

// Variance returns the sample variance, or zero for fewer than two
// samples.
func (a *Accumulator) Variance() float64 {
	if len(a.samples) < 2 {
		return 0
	}
	return stat.Variance(a.samples, nil)
}

// StdDev returns the sample standard deviation.
func (a *Accumulator) StdDev() float64 {
	if len(a.samples) < 2 {
		return 0
	}
	return stat.StdDev(a.samples, nil)
}
