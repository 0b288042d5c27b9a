package core

// DebugMode enables extra diagnostics during development.
// Defaults to true; release embedders call SetDebugMode(false).
var DebugMode = true

// SetDebugMode toggles framework debug diagnostics.
func SetDebugMode(enabled bool) {
	DebugMode = enabled
}
