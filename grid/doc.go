// Package grid down-samples the inflated world raster into a coarse boolean
// occupancy grid and provides line-of-sight raycasting over it.
//
// What:
//
//   - DiscretizedMap — a W/D × H/D grid built from a worldmap at ratio D:
//     a cell covers D×D inflated pixels and is occupied iff ANY of them is
//     an obstacle.
//   - OpenAt — the per-cell traversability test.
//   - PathIsClear — walks a segment in step-wise interpolation and reports
//     whether it is fully clear plus the furthest valid point reached.
//     Points within an exclusion radius of either endpoint are skipped, so
//     callers can tolerate endpoints that sit on obstacle fringes.
//   - Cell — an integer lattice point with a stable dense key (y·W + x),
//     usable directly as a map key in search bookkeeping.
//
// Why:
//
//   - Planning on the full 600×400 raster is wasteful; a ratio-D grid keeps
//     the search space small while the conservative any-pixel-occupied rule
//     never reports a blocked cell as free.
//   - The same raycaster serves the grid planners, the visibility-graph edge
//     construction, and the RRT extension step (at ratio 1).
//
// Coordinate spaces: PathIsClear operates in discretized (cell) coordinates;
// PathIsClearInOriginal accepts world coordinates and divides by D first.
//
// Errors:
//
//   - ErrNilMap   — no source map given.
//   - ErrBadRatio — ratio < 1.
//
// Complexity: construction O(W×H); raycasts O(len/step).
package grid
