// Package fairlock provides the fair re-entrant mutex the session guards
// its actors with.
//
// What:
//
//   - Lock / TryLock — acquire the mutex, blocking (or up to a timeout).
//     A goroutine that already holds the lock re-enters immediately; the
//     hold nests and must be released once per acquisition.
//   - Unlock — release one hold. A release by a goroutine that does not
//     own the lock returns ErrNotOwner; MustUnlock panics on it, because a
//     misowned release means the actor-state invariants are already
//     corrupted.
//   - Fairness — waiters queue FIFO and ownership is handed directly to
//     the head of the queue, so neither the physics tick nor the planner
//     tick can starve the other under contention.
//
// Why:
//
//   - sync.Mutex is neither re-entrant nor fair, and it cannot detect a
//     misowned release. The simulation needs all three: the session's
//     public operations take the lock and call each other, the two ticker
//     goroutines contend every frame, and an unpaired release must be loud.
//
// Ownership is keyed on the goroutine id read from the runtime.Stack
// header. That read costs a small stack dump per acquisition, which is
// noise next to the work done under this lock.
//
// Complexity: O(1) per operation amortized (plus the id read).
package fairlock
