// package benaphore provides mutual-exclusion locks built from an atomic
// counter and a counting semaphore.
//
// A native mutex pays for a trip through the kernel's blocking machinery
// even when nobody else wants the lock. A benaphore keeps all of its
// contention state in a single machine word and only touches the semaphore
// when there is an actual conflict:
//
//	var mu benaphore.Benaphore
//
//	func Deposit(n uint64) {
//		mu.Lock()
//		balance += n
//		mu.Unlock()
//	}
//
// The counter records how many goroutines are between entering Lock and
// completing Unlock. A Lock that bumps it 0→1 owns the lock outright and
// never blocks; a Lock that bumps it any higher parks on the semaphore. An
// Unlock that drops it back to 0 saw no waiters and makes no semaphore
// call; an Unlock that leaves it above 0 wakes exactly one parked
// goroutine. Every goroutine that parks is therefore paired with exactly
// one wake, under any interleaving, which is the whole correctness
// argument.
//
// Hybrid puts a bounded compare-and-swap spin in front of the same
// protocol. When critical sections are a handful of instructions long, a
// short spin is cheaper than parking, and a failed compare-and-swap never
// touches the counter, so the spin competes with parked waiters on equal
// footing and falls back to the benaphore path without losing state.
//
// Mutex wraps the native blocking primitive with no fast path at all and
// exists as the baseline the other two are measured against.
//
// All three types satisfy sync.Locker, and none of them support recursive
// locking: a goroutine that Locks a lock it already holds deadlocks.
package benaphore
