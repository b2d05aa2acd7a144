// Package sim drives a session: the physics/render tick and the planner
// tick, the shared input state they read, the frame renderer, and the
// engine configuration.
//
// What:
//
//   - InputState — the concurrent control→pressed mapping. The input
//     handler writes it, the physics tick reads it; nobody else touches it.
//   - Engine — two long-running goroutines over one session:
//     the physics tick (every 25 ms) translates the player with its
//     previous velocity, derives a new velocity from the key state,
//     translates every live zombie, and requests a repaint;
//     the planner tick (every 100 ms) snapshots goal and zombie state
//     under the actor lock, salvages or replans each live zombie's path
//     OUTSIDE the lock, then re-acquires it to install paths, respawn
//     pathless zombies, consume reached waypoints, and steer.
//   - Renderer — composes a frame image: the displayed raster, actor disks
//     (zombies tinted by remaining health), optional path overlays, and a
//     side panel showing the wave number and point count fed by the
//     session's listeners.
//   - Config — YAML-backed engine settings with defaults matching the
//     shipped tuning.
//
// Concurrency contract:
//
//   - The physics tick takes the actor lock with a half-frame timeout and
//     simply skips the frame when it loses the race; the planner tick
//     blocks. Either tick may run several times between observations by
//     the other; a velocity the planner installs may be overwritten within
//     the same frame, which is fine because it was derived from a position
//     observed under the same lock.
//   - Shutdown is cooperative: Stop CAS-flips the keepAlive flag and joins
//     both goroutines. Workers observe the flag at their loop heads.
//
// Errors:
//
//   - ErrNilSession / ErrNilRegistry — missing collaborators.
//   - ErrAlreadyRunning / ErrNotRunning — Start/Stop misuse.
//   - ErrBadConfig — configuration failed validation.
package sim
