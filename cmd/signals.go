package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which dirbuf considers to be requesting
// termination. On Windows, Go only emulates SIGINT (on Ctrl-C and Ctrl-Break)
// and SIGTERM.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
