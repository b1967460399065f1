package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/fatih/color"
)

// checkMain is the entry point for the check command.
func checkMain(_ *cobra.Command, arguments []string) error {
	// Ensure that at least one path has been specified.
	if len(arguments) == 0 {
		return errors.New("no paths specified")
	}

	// Resolve the base directory to an absolute path so that it can anchor
	// both absolute and working-directory-relative arguments.
	directory, err := filepath.Abs(checkConfiguration.directory)
	if err != nil {
		return errors.Wrap(err, "unable to resolve base directory")
	}

	// Create the logger.
	logger, err := checkConfiguration.logger()
	if err != nil {
		return err
	}

	// Create the selector.
	selector, err := checkConfiguration.createSelector(directory)
	if err != nil {
		return errors.Wrap(err, "unable to create selector")
	}
	logger.Debugf("checking against %v", selector)

	// Evaluate each path and print its verdict.
	var anyExcluded bool
	for _, path := range arguments {
		absolute, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve path (%s)", path)
		}
		if selector.Matches(absolute) {
			fmt.Println(color.GreenString("selected"), path)
		} else {
			fmt.Println(color.RedString("excluded"), path)
			anyExcluded = true
		}
	}

	// Signal exclusion through the exit code.
	if anyExcluded {
		os.Exit(1)
	}

	// Success.
	return nil
}

// checkCommand is the check command.
var checkCommand = &cobra.Command{
	Use:          "check <path>...",
	Short:        "Check whether paths would be selected",
	RunE:         checkMain,
	SilenceUsage: true,
}

// checkConfiguration stores configuration for the check command.
var checkConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// selectionFlags are the shared selection flags.
	selectionFlags
	// directory is the base directory against which paths are evaluated.
	directory string
}

func init() {
	// Grab a handle for the command line flags.
	flags := checkCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&checkConfiguration.help, "help", "h", false, "Show help information")

	// Wire up check flags.
	checkConfiguration.register(flags)
	flags.StringVarP(&checkConfiguration.directory, "directory", "C", ".", "Set the base directory against which paths are evaluated")
}
