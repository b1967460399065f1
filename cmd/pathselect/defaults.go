package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Geomatys/pathselect/cmd"

	"github.com/Geomatys/pathselect/pkg/selector"
)

// defaultsMain is the entry point for the defaults command.
func defaultsMain(_ *cobra.Command, _ []string) error {
	// Print the default exclude catalog.
	for _, pattern := range selector.DefaultExcludes() {
		fmt.Println(pattern)
	}

	// Success.
	return nil
}

// defaultsCommand is the defaults command.
var defaultsCommand = &cobra.Command{
	Use:   "defaults",
	Short: "Show the built-in default exclude patterns",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(defaultsMain),
}

// defaultsConfiguration stores configuration for the defaults command.
var defaultsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := defaultsCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&defaultsConfiguration.help, "help", "h", false, "Show help information")
}
