// Package search finds the cheapest route between two cities of a route graph
// under hop and duration limits.
//
// Overview:
//
//   - Prices are dynamic: every flight is quoted at the query's reference time
//     (see package fare), so the same graph yields different routes at 09:00
//     and at 23:00.
//   - The engine is a constrained variant of Dijkstra's algorithm. A min-heap
//     frontier holds path-states {city, cost, hops, duration}; the cheapest one
//     is expanded first and the search stops the first time the goal city is
//     popped.
//   - Ties on cost are broken by insertion order (earliest first), never by the
//     contents of the path, so results are reproducible.
//   - Paths are rebuilt once, at the end, from parent indexes kept in an arena;
//     no per-state path copies are made.
//
// Constraints:
//
//   - WithMaxHops(n): a path may use at most n flights. Absent means unbounded.
//   - WithMaxDuration(d): the summed flight durations may not exceed d. Absent
//     means unconstrained.
//
// Dominance pruning (known limitation):
//
//	A best-known-cost table keyed by city alone drops any new path-state whose
//	cost is not strictly lower than the best cost already recorded for its
//	city, regardless of how many hops or how much duration it has left. A
//	cheaper path that later runs out of hop or duration budget can therefore
//	hide a costlier path that would have reached the goal: the search may
//	report "no route" although a feasible one exists. This is the intended
//	behavior of the engine; it optimizes cost only and treats the limits as
//	feasibility filters.
//
// Results:
//
//   - A found route starts at start, ends at goal, and follows existing flights.
//   - start == goal yields the one-city route [start] with cost 0, even when
//     start is not in the graph.
//   - "No route" is not an error: Route.Found() is false and Path is empty.
//   - Errors are reserved for bad input (nil graph, empty endpoints, negative
//     limits, nil pricer) and for a pricer quoting a negative or NaN price.
//
// Complexity:
//
//   - Time:  O(S log S) where S is the number of enqueued path-states, bounded
//     by the hop limit times the branching factor.
//   - Space: O(S) for the arena and the frontier, O(C) for the cost table.
//
// Thread safety:
//
//	Every call allocates its own frontier, arena and cost table. Concurrent
//	searches over a graph that is not being modified are safe.
package search
