package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/Geomatys/pathselect/pkg/pathselect"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no command is specified, then print help information and bail. We
	// have to exit with an error since we effectively don't know what to do.
	command.Help()
	return errors.New("no command specified")
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "pathselect",
	Version:      pathselect.Version,
	Short:        "Select files beneath a directory using include and exclude patterns",
	RunE:         rootMain,
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. pathselect is designed to be usable
	// from scripts and other tooling on Windows, where mousetrap would
	// otherwise block execution.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("pathselect version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		listCommand,
		checkCommand,
		defaultsCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
