// Package geom provides the 2D geometric primitives the arena simulation is
// built on: world-coordinate positions and velocities.
//
// What:
//
//   - Position — an immutable point in world coordinates with distance,
//     angle, translation and ε-tolerant equality.
//   - Velocity — an immutable 2D velocity with a polar constructor
//     (heading + magnitude) and per-axis displacement helpers.
//
// Why:
//
//   - Actors are holonomic disks; every higher layer (map, planners, the
//     simulation loop) speaks in these two value types.
//   - ε-tolerant equality (default 0.01 world units) makes waypoint-arrival
//     checks robust against floating-point drift.
//
// Both types embed geo's r2.Point, so the full vector algebra (Add, Sub,
// Norm, Dot, ...) is available on them directly.
//
// Complexity: all operations are O(1).
package geom
