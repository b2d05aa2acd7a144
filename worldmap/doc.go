// Package worldmap holds the static obstacle map the arena is played on.
//
// What:
//
//   - MapData — an immutable pair of rasters: the displayed obstacle raster
//     (what the renderer draws) and the inflated raster (obstacles dilated by
//     the actor radius) that every traversability query runs against, plus
//     the spawn-point table.
//   - Load — reads a map directory: map.png (pure white = free, anything
//     else = obstacle) and data.txt (player spawn, zombie spawns, robot
//     stations).
//
// Why:
//
//   - Dilating obstacles once by the actor radius turns every disk-shaped
//     actor into a point for collision and planning purposes: a position is
//     traversable iff its inflated pixel is free.
//   - MapData is immutable after construction, so it is shared between the
//     physics and planner goroutines without locking.
//
// Errors:
//
//   - ErrMapSize          — the raster is not exactly 600×400.
//   - ErrNoZombieSpawns   — data.txt declared no zombie spawn points.
//   - ErrBadSpawnLine     — an entry in data.txt could not be parsed.
//   - ErrSpawnOutOfBounds — a declared spawn point lies outside the map.
//
// Complexity: construction is O(W×H×R²) for the dilation pass; every query
// afterwards is O(1).
package worldmap
