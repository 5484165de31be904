package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/adapter/files"
)

// applyMain is the entry point for the apply command.
func applyMain(_ *cobra.Command, arguments []string) error {
	// Set up the application.
	app, err := newApplication()
	if err != nil {
		return err
	}

	// Load and plan actions.
	list, err := actions.Load(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to load actions")
	} else if len(list) == 0 {
		fmt.Println("No actions to apply")
		return nil
	}
	planned, err := app.plan(list)
	if err != nil {
		return err
	}

	// Print previews.
	for _, p := range planned {
		fmt.Fprintln(color.Output, previewLine(p))
	}

	// Confirm application.
	if !applyConfiguration.yes {
		if !cmd.StandardInputIsTerminal() {
			return errors.New("confirmation required (use --yes for non-interactive usage)")
		}
		confirmed, err := cmd.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Apply %d actions?", len(planned)))
		if err != nil {
			return errors.Wrap(err, "unable to confirm")
		} else if !confirmed {
			return errors.New("application cancelled")
		}
	}

	// Create a cancellable context tied to termination signals.
	ctx, cancel := signal.NotifyContext(context.Background(), cmd.TerminationSignals...)
	defer cancel()

	// Perform the actions. Actions are executed in order and execution stops
	// at the first failure, leaving earlier actions applied.
	statusLinePrinter := &cmd.StatusLinePrinter{}
	err = app.files.PerformAll(ctx, list, func(index int, _ actions.Action) {
		statusLinePrinter.Printf("Applied action %d of %d", index+1, len(list))
	})
	if err != nil {
		statusLinePrinter.BreakIfNonEmpty()
		var performErr *files.PerformError
		if errors.As(err, &performErr) && performErr.Index > 0 {
			cmd.Warning(fmt.Sprintf("%d earlier actions were applied", performErr.Index))
		}
		return err
	}
	statusLinePrinter.Clear()
	fmt.Printf("Applied %d actions\n", len(planned))

	// Success.
	return nil
}

// applyCommand is the apply command.
var applyCommand = &cobra.Command{
	Use:          "apply <actions-file>",
	Short:        "Apply the actions in an action file",
	Args:         cmd.ExactArguments(1, "action file"),
	Run:          cmd.Mainify(applyMain),
	SilenceUsage: true,
}

// applyConfiguration stores configuration for the apply command.
var applyConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// yes indicates whether or not to skip confirmation.
	yes bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := applyCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&applyConfiguration.help, "help", "h", false, "Show help information")

	// Wire up apply flags.
	flags.BoolVarP(&applyConfiguration.yes, "yes", "y", false, "Apply without asking for confirmation")
}
