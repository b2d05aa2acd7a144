// Package pathfind implements the representation-agnostic shortest-path
// engine the concrete planners are built on.
//
// What:
//
//   - Medium — the traversal medium abstraction: a node set with adjacency,
//     edge costs, world-coordinate projection, and per-query lifecycle hooks
//     (Prepare lifts world endpoints into node space and may mutate the
//     medium, Close undoes it).
//   - Search — generic best-first relaxation over a Medium: Dijkstra with a
//     zero heuristic, A* with a Euclidean one. A straight-line fast path
//     short-circuits to the two-point segment before any node work.
//   - Path — the polyline result, consumed as a stream of waypoints by the
//     simulation: arrival test, waypoint consumption, and steering-velocity
//     derivation.
//   - Salvage — the cheap shortcut that reuses an existing path when both
//     endpoints have barely moved, rewriting only the final waypoint.
//
// Why:
//
//   - One search procedure serves every node representation: grid cells and
//     visibility-graph nodes plug in as media, heuristics plug in as
//     functions. Planning failure is a nil path, not an error — callers
//     tolerate it and retry next tick.
//
// Mechanics:
//
//   - The frontier is a lazy-decrease-key min-heap ordered by
//     tentative distance + heuristic: a cost decrease pushes a fresh entry
//     and stale entries are skipped against the closed set when popped.
//   - An empty node set, or an exhausted frontier, yields a nil path.
//
// Complexity: O((V + E) log V) time, O(V + E) space per query.
package pathfind
