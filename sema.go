package benaphore

import "sync/atomic"

// Semaphore is a counting semaphore backed by the runtime's goroutine
// parking machinery. Acquire may block; Release never does. The zero
// value is a semaphore with an initial count of zero, which is the shape
// the locks in this package want.
type Semaphore struct {
	// permits is the available count when non-negative, and minus the
	// number of parked goroutines when negative.
	permits atomic.Int32
	sema    uint32
}

// NewSemaphore returns a Semaphore with the given initial count.
func NewSemaphore(n int32) *Semaphore {
	s := new(Semaphore)
	s.permits.Store(n)
	return s
}

// Acquire takes one permit, parking the calling goroutine until a
// matching Release when none are available.
func (s *Semaphore) Acquire() {
	if s.permits.Add(-1) < 0 {
		runtime_Semacquire(&s.sema)
	}
}

// Release returns one permit and wakes a single parked goroutine if any
// are waiting. The runtime picks which one; no ordering is promised.
func (s *Semaphore) Release() {
	if s.permits.Add(1) <= 0 {
		runtime_Semrelease(&s.sema, false, 0)
	}
}
