// Package stats accumulates floating-point samples gathered during a
// simulation run and summarizes them with gonum's stat package, then
// renders the summary as "<key> <value>" lines.
package stats
