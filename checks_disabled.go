//go:build nochecks

package benaphore

const checksEnabled = false
