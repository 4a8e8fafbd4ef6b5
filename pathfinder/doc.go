// Package pathfinder finds the minimum-flight path between two cities of a
// routegraph.Graph and turns it into an itinerary.
//
// What
//
//   - Breadth-first search over city keys. Expanding a city enumerates every
//     airport located in it, every outgoing edge of those airports, and maps
//     each edge destination back to its city.
//   - The frontier is seeded with one node per airport of the source city.
//   - The goal test runs on each child as soon as it is built, so the first
//     match is at minimum depth.
//   - A destination city is only used as an intermediate hop when it is a hub
//     (at least one of its airports has outgoing routes). The goal city is
//     always accepted.
//   - Edges with a nil destination are skipped.
//
// De-duplication
//
//	A city is expanded at most once (the explored set). A child is not queued
//	when a node with the same identity is already waiting in the frontier.
//	Identity is chosen by DedupPolicy; the default DedupCityAirline treats
//	two nodes as the same candidate only when they share both the city key
//	and the incoming airline. DedupCity is the wider city-only variant.
//
// Ties
//
//	Equal-hop paths are not ranked by distance. The winner is whichever child
//	reaches the goal first, which follows airport table and route table order.
//
// Nodes
//
//	Search nodes live in an arena owned by the Result and reference their
//	parent by index, so the frontier and the winning chain never share
//	pointers.
//
// Complexity (C = cities, E = edges)
//
//   - Time:   O(C + E) expansions, each edge examined once per expansion of its city.
//   - Memory: O(number of queued nodes).
package pathfinder
