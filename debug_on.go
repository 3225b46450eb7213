//go:build typedheader_debug

package typedheader

const debugChecks = true
