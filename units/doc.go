// Package units implements the adaptive-units model: the function mapping
// a demand's reference number of contiguous units (ncu) and a candidate
// path's cost to the number of spectrum units that path actually requires.
//
// Longer paths need more units because signal quality degrades with
// distance under a distance-dependent modulation scheme; the model
// approximates that degradation by scaling ncu up in integer multiples of
// a reference reach R.
package units
