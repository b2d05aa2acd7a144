// Package session owns one running game: the world map, the player, the
// current wave, the actor lock, and the listener lists the UI subscribes to.
//
// What:
//
//   - Session — constructs the player at the map's spawn and guards every
//     actor mutation behind a single fair re-entrant mutex (the actor
//     lock). The map itself is immutable and unguarded.
//   - StartNextWave — replaces the current wave with the next-numbered one
//     and dispatches a WaveChangeEvent to every wave listener while the
//     actor lock is held.
//   - ChangePlayerPoints — adjusts the player's points under the lock, then
//     dispatches a PointsChangeEvent WITHOUT the lock. The asymmetry with
//     wave dispatch is deliberate and preserved: point listeners may take
//     their time, wave listeners observe a consistent wave.
//
// Listener registration returns a handle; removal by handle reports whether
// anything was removed. Dispatch iterates a private snapshot of the list,
// so listeners may add or remove listeners without invalidating the
// iteration.
//
// Errors:
//
//   - ErrNilMap — no world map given.
package session
