package benaphore

import "sync"

// Interface conformance for the three lock variants.
var (
	_ sync.Locker = (*Mutex)(nil)
	_ sync.Locker = (*Benaphore)(nil)
	_ sync.Locker = (*Hybrid)(nil)
)

// Mutex is the baseline lock: a thin wrapper over the native blocking
// primitive with no fast path in front of it. Every Lock and Unlock
// round-trips through the runtime, contended or not.
type Mutex struct {
	mu sync.Mutex
}

// Lock blocks the calling goroutine until the lock is free, then takes it.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the lock and wakes at most one blocked acquirer. It is
// a fatal error to Unlock a Mutex the caller does not hold.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// TryLock takes the lock if it is free and reports whether it did.
func (m *Mutex) TryLock() bool { return m.mu.TryLock() }
