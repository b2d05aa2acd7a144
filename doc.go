// Package zarena is the core of a 2D survival-arena simulation: reactive
// path planning over a static obstacle map, driven by a concurrent
// simulation loop.
//
// 🧟 What is zarena?
//
//	A pursuit sandbox: a player walks a 600×400 raster arena while waves of
//	zombies replan their routes toward it ten times a second, over
//	interchangeable planners:
//
//	  • grid Dijkstra / A*             — exhaustive search over an occupancy grid
//	  • visibility-graph Dijkstra / A* — corner-hugging sparse routes
//	  • RRT                            — best-effort sampling for ugly maps
//
// ✨ Why care?
//
//   - One generic engine — every planner is a medium plus a heuristic
//   - Honest concurrency — two preemptive tickers share the actors under
//     a single fair re-entrant lock
//   - Cheap replanning   — paths are salvaged, not recomputed, while the
//     endpoints barely move
//
// Under the hood, the packages stack leaves-first:
//
//	geom/      — positions & velocities
//	worldmap/  — obstacle raster, inflation, spawn table, map loading
//	grid/      — discretized occupancy grid + raycasting
//	visgraph/  — obstacle-vertex visibility graph
//	pathfind/  — the generic best-first engine, Path, salvage
//	planner/   — concrete planners + the swappable registry
//	actor/     — player, zombies, waves
//	fairlock/  — the fair re-entrant actor lock
//	session/   — one running game: actors, lock, listeners
//	sim/       — the physics and planner tickers, renderer, config
//
// The windowing shell, input decoding, and font loading live outside this
// module: the simulation consumes an InputState and emits image frames.
package zarena
