//go:build !nochecks

package benaphore

// checksEnabled gates the invariant checks in check. Build with
// -tags nochecks to strip them for measurement runs.
const checksEnabled = true
