package benaphore

import (
	"fmt"
	"os"
	"runtime"
)

// check aborts the process when cond is false, naming the violated
// condition and the call site. A violated condition here is a defect in
// the locking protocol itself, so there is nothing to recover; the
// process dies where the damage is still visible. Building with the
// nochecks tag turns every call into a no-op for measurement runs.
func check(cond bool, what string) {
	if !checksEnabled || cond {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	fmt.Fprintf(os.Stderr, "Failure: %s (%s:%d)\n", what, file, line)
	os.Exit(2)
}
