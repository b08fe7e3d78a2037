package benaphore

import (
	"runtime"
	"sync"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// spin keeps the lock held for a little while without sleeping, to vary
// critical section lengths in the stress test.
func spin(n uint32) uint32 {
	x := n
	for i := uint32(0); i < n; i++ {
		x = x*2654435761 + i
	}
	return x
}

func TestLockStress(t *testing.T) {
	cases := []struct {
		name string
		mu   sync.Locker
	}{
		{"mutex", new(Mutex)},
		{"benaphore", new(Benaphore)},
		{"mutex2", new(Hybrid)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			const iters = 20000

			np := runtime.GOMAXPROCS(-1)
			total := 0
			sink := uint32(0)

			var wg sync.WaitGroup
			wg.Add(np)
			for i := 0; i < np; i++ {
				rng := pcg.New(uint64(i))
				go func() {
					defer wg.Done()
					for j := 0; j < iters; j++ {
						hold := rng.Uint32() % 64
						tc.mu.Lock()
						total++
						sink += spin(hold)
						tc.mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, total, np*iters)
			_ = sink
		})
	}
}

func BenchmarkLocks(b *testing.B) {
	run := func(name string, mk func() sync.Locker) {
		b.Run(name, func(b *testing.B) {
			b.Run("Uncontended", func(b *testing.B) {
				mu := mk()
				b.ReportAllocs()

				for i := 0; i < b.N; i++ {
					mu.Lock()
					mu.Unlock()
				}
			})

			b.Run("Parallel", func(b *testing.B) {
				mu := mk()
				b.ReportAllocs()

				b.RunParallel(func(pb *testing.PB) {
					for pb.Next() {
						mu.Lock()
						mu.Unlock()
					}
				})
			})
		})
	}

	run("Mutex", func() sync.Locker { return new(Mutex) })
	run("Benaphore", func() sync.Locker { return new(Benaphore) })
	run("Hybrid", func() sync.Locker { return new(Hybrid) })
}
