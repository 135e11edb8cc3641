// Package spectrum implements the contiguous-unit interval algebra used to
// describe which spectrum slots are free on a network edge or path.
//
// A CU is a half-open integer interval [Min, Max) of slot indices. An SU is a
// sorted set of pairwise-disjoint, non-adjacent CUs: the set of free
// slot-ranges on an edge. SU maintains three invariants across every
// mutation:
//
//   - adjacent CUs (a.Max == b.Min) are merged into one;
//   - empty CUs never appear in the set;
//   - iteration always yields CUs in ascending order of Min.
package spectrum
