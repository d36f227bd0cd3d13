//go:build !mutiter_debug

package driver

// debugChecks is the default for Options.Checks in release builds.
const debugChecks = false
