package fairlock

import (
	"bytes"
	"errors"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// ErrNotOwner is returned by Unlock when the calling goroutine does not
// hold the lock. Callers treat it as a corrupted invariant.
var ErrNotOwner = errors.New("fairlock: unlock by non-owner goroutine")

// waiter is one queued acquisition: the goroutine waiting and the channel
// ownership is handed over on.
type waiter struct {
	gid   uint64
	ready chan struct{}
}

// Mutex is a FIFO-fair re-entrant mutex. The zero value is ready to use.
type Mutex struct {
	mu    sync.Mutex
	owner uint64 // goroutine id of the holder; 0 = unheld
	holds int    // re-entrancy depth
	queue []*waiter
}

// New returns a fresh mutex.
func New() *Mutex {
	return &Mutex{}
}

// Lock acquires the lock, blocking until it is handed over.
// Re-entrant: a holder acquires again immediately and must release once
// per acquisition.
func (l *Mutex) Lock() {
	gid := goroutineID()
	if w := l.enqueue(gid); w != nil {
		<-w.ready
	}
}

// TryLock attempts to acquire the lock within the timeout. It returns
// whether the lock was acquired. Re-entrant acquisitions succeed
// immediately.
func (l *Mutex) TryLock(timeout time.Duration) bool {
	gid := goroutineID()
	w := l.enqueue(gid)
	if w == nil {
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-w.ready:
		return true
	case <-timer.C:
		if l.abandon(w) {
			return false
		}
		// Ownership was being handed over while the timer fired; the
		// handoff is already committed to this goroutine, so accept it.
		<-w.ready

		return true
	}
}

// enqueue takes the lock if free (or re-entrant), returning nil, otherwise
// appends a waiter and returns it.
func (l *Mutex) enqueue(gid uint64) *waiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner == gid {
		l.holds++

		return nil
	}
	if l.owner == 0 && len(l.queue) == 0 {
		l.owner, l.holds = gid, 1

		return nil
	}
	w := &waiter{gid: gid, ready: make(chan struct{})}
	l.queue = append(l.queue, w)

	return w
}

// abandon removes a timed-out waiter from the queue. It reports false when
// the waiter is no longer queued — ownership was already handed to it.
func (l *Mutex) abandon(w *waiter) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, q := range l.queue {
		if q == w {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)

			return true
		}
	}

	return false
}

// Unlock releases one hold. When the outermost hold is released, ownership
// is handed directly to the head of the waiter queue. Returns ErrNotOwner
// if the calling goroutine does not hold the lock.
func (l *Mutex) Unlock() error {
	gid := goroutineID()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner != gid {
		return ErrNotOwner
	}
	l.holds--
	if l.holds > 0 {
		return nil
	}
	if len(l.queue) > 0 {
		next := l.queue[0]
		l.queue = l.queue[1:]
		l.owner, l.holds = next.gid, 1
		close(next.ready)
	} else {
		l.owner = 0
	}

	return nil
}

// MustUnlock releases one hold and panics on a misowned release.
func (l *Mutex) MustUnlock() {
	if err := l.Unlock(); err != nil {
		panic(err)
	}
}

// HeldByCurrent reports whether the calling goroutine holds the lock.
func (l *Mutex) HeldByCurrent() bool {
	gid := goroutineID()
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.owner == gid
}

// goroutinePrefix is the fixed header runtime.Stack emits before the id.
var goroutinePrefix = []byte("goroutine ")

// goroutineID extracts the current goroutine's id from the runtime.Stack
// header ("goroutine <id> [running]: ...").
func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, goroutinePrefix)
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		panic("fairlock: cannot parse goroutine id: " + err.Error())
	}

	return id
}
