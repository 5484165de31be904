package cmd

import (
	"os"

	isatty "github.com/mattn/go-isatty"
)

// isTerminal determines whether or not a file descriptor refers to a terminal,
// including Cygwin and MSYS2 pseudo-terminals.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StandardInputIsTerminal determines whether or not standard input is a
// terminal.
func StandardInputIsTerminal() bool {
	return isTerminal(os.Stdin.Fd())
}

// StandardOutputIsTerminal determines whether or not standard output is a
// terminal.
func StandardOutputIsTerminal() bool {
	return isTerminal(os.Stdout.Fd())
}

// StandardErrorIsTerminal determines whether or not standard error is a
// terminal.
func StandardErrorIsTerminal() bool {
	return isTerminal(os.Stderr.Fd())
}
