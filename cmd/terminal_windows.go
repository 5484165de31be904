package cmd

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"

	isatty "github.com/mattn/go-isatty"
)

// HandleTerminalCompatibility restarts the current process inside a terminal
// compatibility emulator if necessary. It currently only handles the case of
// mintty consoles, which require relaunching the current command inside
// winpty for interactive confirmation prompts to work.
func HandleTerminalCompatibility() {
	// If we're not running inside a mintty-based terminal, then there's nothing
	// that we need to do.
	if PerformingShellCompletion || !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return
	}

	// Locate winpty.
	winpty, err := exec.LookPath("winpty")
	if err != nil {
		Fatal(errors.New("running inside mintty terminal and unable to locate winpty"))
	}

	// Compute the path to the current executable.
	executable, err := os.Executable()
	if err != nil {
		Fatal(errors.Wrap(err, "running inside mintty terminal and unable to locate current executable"))
	}

	// Relaunch the command under winpty and terminate with its exit code.
	arguments := append([]string{executable}, os.Args[1:]...)
	command := exec.Command(winpty, arguments...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); command.ProcessState == nil {
		Fatal(errors.Wrap(err, "unable to relaunch inside winpty"))
	}
	os.Exit(command.ProcessState.ExitCode())
}
