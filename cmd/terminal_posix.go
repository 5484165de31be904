//go:build !windows

package cmd

// HandleTerminalCompatibility restarts the current process inside a terminal
// compatibility emulator if necessary. No emulation is required on POSIX
// systems.
func HandleTerminalCompatibility() {}
