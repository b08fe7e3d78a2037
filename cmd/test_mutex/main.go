// Command test_mutex runs contending workers against one of the lock
// variants and verifies that no increments were lost.
//
// Usage:
//
//	test_mutex mutex 2        # native mutex, 2 workers
//	test_mutex benaphore 4    # benaphore, 4 workers
//	test_mutex mutex2 8       # hybrid spin/park lock, 8 workers
//
// Each worker increments a shared counter a fixed number of times under
// the chosen lock. Progress lines go to stdout; the expected and actual
// totals go to stderr after all workers have joined. Any invalid
// invocation exits with status 1 and no output.
//
// Build with -tags nochecks to strip the invariant checks from the lock
// implementations for measurement runs.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sys/cpu"

	"benaphore"
)

// incrementsPerThread is fixed rather than a flag so that runs stay
// comparable across variants and machines.
const incrementsPerThread = 20 * 1000 * 1000

// maxThreads caps the worker count accepted on the command line.
const maxThreads = 32

// sharedState is what the workers contend over. The pads keep the lock,
// the payload, and the read-mostly config off each other's cache lines;
// without them false sharing dominates the measurement.
type sharedState struct {
	increments uint32

	_   cpu.CacheLinePad
	mtx sync.Locker
	_   cpu.CacheLinePad

	total uint32
}

// worker performs the guarded increments. total is only ever touched
// inside the critical section, so the lock's mutual exclusion is the only
// thing keeping it consistent. That is the point.
func worker(s *sharedState) {
	for i := uint32(0); i != s.increments; i++ {
		s.mtx.Lock()
		s.total++
		s.mtx.Unlock()
	}
}

// runTest spawns numThreads workers over a fresh sharedState, joins them,
// and reports the expected versus actual totals. It returns the actual
// total for the callers that want to inspect it.
func runTest(mtx sync.Locker, numThreads int, increments uint32, stdout, stderr io.Writer) uint32 {
	fmt.Fprintf(stdout, "Running test_mutex with %d threads\n", numThreads)
	fmt.Fprintf(stdout, "Increments in each thread: %d\n", increments)

	s := &sharedState{increments: increments, mtx: mtx}

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for t := 0; t < numThreads; t++ {
		go func() {
			defer wg.Done()
			worker(s)
		}()
	}
	wg.Wait()

	fmt.Fprintf(stderr, "expected: %d\n", uint32(numThreads)*increments)
	fmt.Fprintf(stderr, "actual:   %d\n", s.total)
	return s.total
}

// newLock maps a variant name from the command line to a fresh lock.
func newLock(variant string) (sync.Locker, bool) {
	switch variant {
	case "mutex":
		return new(benaphore.Mutex), true
	case "benaphore":
		return new(benaphore.Benaphore), true
	case "mutex2":
		return new(benaphore.Hybrid), true
	}
	return nil, false
}

// parseThreads accepts an integer in [1, maxThreads].
func parseThreads(arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > maxThreads {
		return 0, false
	}
	return n, true
}

func main() {
	if len(os.Args) != 3 {
		os.Exit(1)
	}
	mtx, ok := newLock(os.Args[1])
	if !ok {
		os.Exit(1)
	}
	numThreads, ok := parseThreads(os.Args[2])
	if !ok {
		os.Exit(1)
	}

	// respect container CPU quotas; a contention measurement with
	// GOMAXPROCS above the quota mostly measures the throttler.
	maxprocs.Set()

	runTest(mtx, numThreads, incrementsPerThread, os.Stdout, os.Stderr)
}
