// Package actor models the moving inhabitants of the arena: the player and
// the zombies, plus the wave that owns the zombie population.
//
// What:
//
//   - Actor — colour, position, velocity, health, and the axis-separated
//     sliding translation every movement goes through: the full step is
//     tried first, then each axis alone, so actors slide along walls
//     instead of sticking to them.
//   - Player — fixed walk/run speeds, a health cap, and a point count.
//   - Zombie — a per-instance speed sampled once at spawn from a skewed
//     normal, so most zombies shamble and the odd one sprints.
//   - Wave — a fixed-capacity slotted container of zombies with a parallel
//     path slot per index, a spawn budget that grows geometrically with the
//     wave number, and shared per-wave zombie health.
//
// Why:
//
//   - Slots instead of a dynamic set keep the planner tick's snapshot and
//     install phases trivially index-stable: slot i observed under the lock
//     is slot i written back under the lock.
//   - The path slot invariant — a path is present only where a zombie is —
//     is maintained by the Wave itself, never by callers.
//
// None of these types synchronize internally: all mutation happens under
// the session's actor lock.
package actor
