package stagelight

import "fmt"

// globalDebug enables lifecycle assertions. Plain bool, no atomics — the
// engine is single-threaded.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, lifecycle
// violations (double Enter, Generate or Render outside an Enter/Exit pair)
// panic instead of proceeding with undefined behavior.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugCheckNotEntered panics if the node is already entered. Called at the
// top of Enter implementations.
func debugCheckNotEntered(entered bool, what string) {
	if globalDebug && entered {
		panic(fmt.Sprintf("stagelight: %s entered twice without Exit", what))
	}
}

// debugCheckEntered panics if the node is not entered. Called by Generate
// and Render implementations that require a live context.
func debugCheckEntered(entered bool, what, op string) {
	if globalDebug && !entered {
		panic(fmt.Sprintf("stagelight: %s on %s outside Enter/Exit", op, what))
	}
}
