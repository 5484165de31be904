package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/dirbuf"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We
	// don't have to worry about arguments being present here because they'll
	// be mistaken for subcommands and rejected by Cobra.
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "dirbuf",
	Version:      dirbuf.Version,
	Short:        "dirbuf lists directories and applies batches of filesystem edits",
	Run:          cmd.Mainify(rootMain),
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configuration is the path to the configuration file. If empty, the
	// default path is used.
	configuration string
	// logLevel is the log level. If unset, the configured level is used.
	logLevel cmd.LevelFlag
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap, which refuses to run the CLI outside
	// of a console on Windows.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("dirbuf version {{ .Version }}\n")

	// Hide Cobra's default completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up persistent flags.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.SortFlags = false
	persistentFlags.StringVarP(&rootConfiguration.configuration, "config", "c", "", "Specify the configuration file path")
	persistentFlags.Var(&rootConfiguration.logLevel, "log-level", "Set the log level (disabled|error|warn|info|debug|trace)")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		listCommand,
		renderCommand,
		applyCommand,
		normalizeCommand,
		writableCommand,
		versionCommand,
	)
}

func main() {
	// Check if a terminal compatibility relaunch is required.
	cmd.HandleTerminalCompatibility()

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
