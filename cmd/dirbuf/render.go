package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
)

// renderMain is the entry point for the render command.
func renderMain(_ *cobra.Command, arguments []string) error {
	// Set up the application.
	app, err := newApplication()
	if err != nil {
		return err
	}

	// Load and plan actions.
	list, err := actions.Load(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to load actions")
	}
	planned, err := app.plan(list)
	if err != nil {
		return err
	}

	// Print previews.
	for _, p := range planned {
		fmt.Fprintln(color.Output, previewLine(p))
	}

	// Success.
	return nil
}

// renderCommand is the render command.
var renderCommand = &cobra.Command{
	Use:          "render <actions-file>",
	Short:        "Preview the actions in an action file",
	Args:         cmd.ExactArguments(1, "action file"),
	Run:          cmd.Mainify(renderMain),
	SilenceUsage: true,
}

// renderConfiguration stores configuration for the render command.
var renderConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := renderCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&renderConfiguration.help, "help", "h", false, "Show help information")
}
