package benaphore

import (
	"runtime"
	"sync/atomic"
)

// spinLimit bounds the optimistic phase of Hybrid.Lock. Past it the lock
// stops burning cycles and parks like a plain Benaphore.
const spinLimit = 5000

// Hybrid is a Benaphore with a bounded spin phase in front of it. For
// critical sections a few instructions long, retrying a compare-and-swap
// is cheaper than parking on the semaphore, so Lock tries the 0→1
// transition up to spinLimit times before joining the benaphore protocol.
// The zero value is an unlocked Hybrid.
type Hybrid struct {
	count atomic.Int32
	sema  Semaphore
}

// Lock acquires the lock. The spin only ever succeeds when the lock is
// actually free, so it cannot steal the count from a goroutine already
// queued on the semaphore; it competes for the same 0→1 transition as
// everyone else.
func (h *Hybrid) Lock() {
	for i := 0; i != spinLimit; i++ {
		if h.count.CompareAndSwap(0, 1) {
			return
		}
		runtime.Gosched()
	}

	// Spin budget spent. A failed compare-and-swap never wrote to the
	// counter, so nothing is lost by switching to the parking path.
	n := h.count.Add(1)
	check(n > 0, "hybrid count overflowed in Lock")
	if n > 1 {
		h.sema.Acquire()
	}
}

// Unlock releases the lock, waking one parked goroutine if any are
// waiting. Spinners need no wake; they notice the 0 on their next
// compare-and-swap.
func (h *Hybrid) Unlock() {
	n := h.count.Add(-1)
	check(n >= 0, "hybrid Unlock of an unlocked lock")
	if n > 0 {
		h.sema.Release()
	}
}

// TryLock is a single iteration of the spin phase: take the lock if it is
// free and report whether it worked.
func (h *Hybrid) TryLock() bool {
	return h.count.CompareAndSwap(0, 1)
}
