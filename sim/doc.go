// Package sim runs a discrete-event simulation of connection requests
// arriving at a network, routed by the search package, holding their
// allocated spectrum for a random duration, and releasing it on
// departure.
//
// Arrivals follow a Poisson process at a rate derived from the offered
// load and mean holding time; holding times and the number of units a
// connection requests are themselves exponentially distributed around
// their configured means, mirroring the traffic model of the original
// simulator this package replaces.
package sim
