package benaphore

import "sync/atomic"

// Benaphore is a mutual-exclusion lock built from an atomic counter and a
// semaphore. The uncontended path is a single atomic add in each of Lock
// and Unlock, with no blocking call in either. The zero value is an
// unlocked Benaphore.
//
// count holds the number of goroutines between entering Lock and
// completing Unlock: 0 is free, 1 is held with no waiters, n > 1 is held
// with n-1 goroutines parked on the semaphore.
type Benaphore struct {
	count atomic.Int32
	sema  Semaphore
}

// Lock acquires the lock, parking the calling goroutine while another
// goroutine holds it. Locking a Benaphore the caller already holds
// deadlocks.
func (b *Benaphore) Lock() {
	n := b.count.Add(1)
	check(n > 0, "benaphore count overflowed in Lock")
	if n > 1 {
		b.sema.Acquire()
	}
}

// Unlock releases the lock. If any goroutine is parked waiting, exactly
// one is woken; which one is up to the semaphore. Unlocking an unheld
// Benaphore corrupts the count and aborts when checks are enabled.
func (b *Benaphore) Unlock() {
	n := b.count.Add(-1)
	check(n >= 0, "benaphore Unlock of an unlocked lock")
	if n > 0 {
		b.sema.Release()
	}
}

// TryLock takes the lock if it is free and reports whether it did. It
// never parks and never queues behind waiters.
func (b *Benaphore) TryLock() bool {
	return b.count.CompareAndSwap(0, 1)
}
