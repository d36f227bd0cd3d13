//go:build mutiter_debug

package driver

// debugChecks is the default for Options.Checks in builds tagged mutiter_debug.
const debugChecks = true
