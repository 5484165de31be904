package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/platform/terminal"
)

// formatName formats an entry name for display. Directories gain a trailing
// slash and links show their target. Control characters are neutralized.
func formatName(entry *cache.Entry) string {
	name := terminal.NeutralizeControlCharacters(entry.Name)
	switch entry.Type {
	case cache.EntryTypeDirectory:
		return name + "/"
	case cache.EntryTypeLink:
		return name + " -> " + terminal.NeutralizeControlCharacters(entry.Meta.Link)
	default:
		return name
	}
}

// formatEntry formats a single listing line. Cells are separated by tabs for
// alignment by a tabwriter.
func formatEntry(entry *cache.Entry, displayed []*columns.Column) string {
	cells := make([]string, 0, len(displayed)+1)
	for _, column := range displayed {
		cells = append(cells, column.Render(entry))
	}
	cells = append(cells, formatName(entry))
	return strings.Join(cells, "\t")
}

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, arguments []string) error {
	// Set up the application.
	app, err := newApplication()
	if err != nil {
		return err
	}

	// Resolve the directory.
	directory, handler, err := app.resolve(arguments[0], true)
	if err != nil {
		return errors.Wrap(err, "unable to resolve directory")
	}

	// Determine and validate columns.
	names := app.configuration.Listing.Columns
	if listConfiguration.columns != nil {
		names = listConfiguration.columns
	}
	resolved, err := app.columns.Resolve(names)
	if err != nil {
		return errors.Wrap(err, "invalid column specification")
	}

	// Create a cancellable context tied to termination signals.
	ctx, cancel := signal.NotifyContext(context.Background(), cmd.TerminationSignals...)
	defer cancel()

	// Perform the listing, reporting progress on the status line.
	statusLinePrinter := &cmd.StatusLinePrinter{UseStandardError: true}
	var listed int
	progress := func(batch []*cache.Entry) {
		listed += len(batch)
		statusLinePrinter.Printf("Listed %d entries", listed)
	}
	if err := handler.List(ctx, directory, names, progress); err != nil {
		statusLinePrinter.BreakIfNonEmpty()
		return errors.Wrapf(err, "unable to list %s", directory)
	}
	statusLinePrinter.Clear()

	// Extract and filter the listed entries.
	entries, _ := app.entries.Entries(directory)
	if !listConfiguration.all {
		entries = app.filter.Apply(entries)
	}

	// Print entries.
	writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintln(writer, formatEntry(entry, resolved))
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "unable to write listing")
	}

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:          "list <directory>",
	Short:        "List the entries of a directory",
	Args:         cmd.ExactArguments(1, "directory"),
	Run:          cmd.Mainify(listMain),
	SilenceUsage: true,
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// all indicates whether or not hidden entries should be shown.
	all bool
	// columns are the requested columns. If nil, the configured columns are
	// used.
	columns []string
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up list flags.
	flags.BoolVarP(&listConfiguration.all, "all", "a", false, "Show hidden entries")
	flags.StringSliceVar(&listConfiguration.columns, "columns", nil, "Specify the columns to display (size|permissions|mtime|ctime|atime|birthtime|type)")
}
