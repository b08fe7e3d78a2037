package benaphore

import (
	"runtime"
	"sync"
	"testing"

	"github.com/zeebo/assert"
)

func TestBenaphore(t *testing.T) {
	var b Benaphore

	b.Lock()
	assert.Equal(t, b.count.Load(), 1)
	assert.That(t, !b.TryLock())
	b.Unlock()
	assert.Equal(t, b.count.Load(), 0)

	assert.That(t, b.TryLock())
	b.Unlock()
}

func TestBenaphoreWake(t *testing.T) {
	ch := make(chan bool, 2)
	var b Benaphore

	b.Lock()
	go func() {
		b.Lock()
		ch <- false
		b.Unlock()
	}()

	// wait for the goroutine to park so the Unlock below has a waiter to
	// wake, then make sure it actually gets woken.
	for b.count.Load() != 2 {
		runtime.Gosched()
	}
	ch <- true
	b.Unlock()
	assert.That(t, <-ch)
	assert.That(t, !<-ch)
	assert.Equal(t, b.count.Load(), 0)
}

func TestBenaphoreRace(t *testing.T) {
	const iters = 100000

	var b Benaphore
	np := runtime.GOMAXPROCS(-1)
	total := 0

	var wg sync.WaitGroup
	wg.Add(np)
	for i := 0; i < np; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iters; j++ {
				b.Lock()
				total++
				b.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, total, np*iters)
	// quiescent: nobody inside Lock/Unlock, so the count must be empty.
	assert.Equal(t, b.count.Load(), 0)
}
