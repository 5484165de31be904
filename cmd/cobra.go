package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// exit terminates the process. It's a variable so that tests can intercept
// termination.
var exit = os.Exit

// Mainify wraps an entry point that returns an error and generates a standard
// Cobra entry point. Entry points can then rely on defer-based cleanup, which
// wouldn't occur if they terminated the process themselves.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}

// DisallowArguments is a Cobra arguments validator that disallows positional
// arguments.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("command does not accept arguments")
	}
	return nil
}

// ExactArguments returns a Cobra arguments validator that requires exactly the
// specified number of positional arguments, described by name in errors.
func ExactArguments(count int, description string) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) != count {
			return errors.Errorf("%s required", description)
		}
		return nil
	}
}
