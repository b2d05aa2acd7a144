// Package planner provides the concrete path planners the arena drives its
// zombies with, and the process-wide registry the simulation reads them
// through.
//
// What:
//
//   - GridDijkstra / GridAStar — the generic engine over an 8-connected
//     discretized occupancy grid.
//   - VGDijkstra / VGAStar — the generic engine over a visibility graph
//     with transient per-query endpoint nodes.
//   - RRT — a best-effort rapidly-exploring random tree over the inflated
//     raster at ratio 1, with a timeout, an optional accept-partial
//     extension mode, and an earliest-ancestor shortcut pass.
//   - Registry — an atomically swappable handle to the current zombie
//     planner. Renew replaces the planner at runtime; the planner tick
//     reads the handle exactly once per computation, so a mid-tick swap
//     never mixes two planners in one pass.
//
// Why:
//
//   - The four engine-backed planners differ only in medium and heuristic;
//     everything else — fast path, relaxation, reconstruction, salvage —
//     is shared machinery.
//   - GeneratePath returns nil on planning failure; the simulation treats
//     that as "retain velocity now, respawn next tick if still pathless".
//
// Salvage gates: grid and visibility-graph planners reuse an old path only
// when it has at least 3 points; RRT accepts 2 but additionally requires
// the straight start→goal segment to be blocked (otherwise a fresh trivial
// path is cheaper than the reuse).
//
// Errors:
//
//   - ErrNilMap     — no world map given to a constructor.
//   - ErrUnknownKind — Renew was asked for a planner kind the registry
//     cannot construct.
package planner
