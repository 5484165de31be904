package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"
)

// normalizeMain is the entry point for the normalize command.
func normalizeMain(_ *cobra.Command, arguments []string) error {
	// Set up the application.
	app, err := newApplication()
	if err != nil {
		return err
	}

	// Normalize and print the location.
	normalized, _, err := app.resolve(arguments[0], false)
	if err != nil {
		return err
	}
	fmt.Println(normalized)

	// Success.
	return nil
}

// normalizeCommand is the normalize command.
var normalizeCommand = &cobra.Command{
	Use:          "normalize <path>",
	Short:        "Print the canonical location of a path",
	Args:         cmd.ExactArguments(1, "path"),
	Run:          cmd.Mainify(normalizeMain),
	SilenceUsage: true,
}

// normalizeConfiguration stores configuration for the normalize command.
var normalizeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := normalizeCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&normalizeConfiguration.help, "help", "h", false, "Show help information")
}
