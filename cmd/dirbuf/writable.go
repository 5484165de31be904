package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"
)

// writableMain is the entry point for the writable command.
func writableMain(_ *cobra.Command, arguments []string) error {
	// Set up the application.
	app, err := newApplication()
	if err != nil {
		return err
	}

	// Resolve the directory and probe it.
	directory, handler, err := app.resolve(arguments[0], true)
	if err != nil {
		return errors.Wrap(err, "unable to resolve directory")
	}
	writable, err := handler.IsWritable(directory)
	if err != nil {
		return err
	}

	// Report the result. Non-writable directories are reported as an error so
	// that scripts can rely on the exit code.
	if !writable {
		return errors.Errorf("%s is not writable", directory)
	}
	fmt.Printf("%s is writable\n", directory)

	// Success.
	return nil
}

// writableCommand is the writable command.
var writableCommand = &cobra.Command{
	Use:          "writable <directory>",
	Short:        "Check whether entries can be created in a directory",
	Args:         cmd.ExactArguments(1, "directory"),
	Run:          cmd.Mainify(writableMain),
	SilenceUsage: true,
}

// writableConfiguration stores configuration for the writable command.
var writableConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := writableCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&writableConfiguration.help, "help", "h", false, "Show help information")
}
