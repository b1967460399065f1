package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dustin/go-humanize"

	"github.com/Geomatys/pathselect/cmd"
)

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, arguments []string) error {
	// Determine the base directory.
	directory := "."
	if len(arguments) == 1 {
		directory = arguments[0]
	} else if len(arguments) > 1 {
		return errors.New("multiple base directories specified")
	}

	// Verify that the base directory exists and is a directory.
	if metadata, err := os.Stat(directory); err != nil {
		return errors.Wrap(err, "unable to probe base directory")
	} else if !metadata.IsDir() {
		return errors.New("base directory is not a directory")
	}

	// Create the logger.
	logger, err := listConfiguration.logger()
	if err != nil {
		return err
	}

	// Create the selector.
	selector, err := listConfiguration.createSelector(directory)
	if err != nil {
		return errors.Wrap(err, "unable to create selector")
	}
	logger.Debugf("listing %s using %v", directory, selector)

	// Walk the base directory, pruning subtrees that can't contain selected
	// paths and printing the files that are selected.
	walkLogger := logger.Sublogger("walk")
	var selected, totalSize uint64
	err = filepath.WalkDir(directory, func(path string, entry fs.DirEntry, err error) error {
		// Warn about unreadable entries and continue so that a single
		// inaccessible subtree doesn't abort the listing.
		if err != nil {
			cmd.Warning(fmt.Sprintf("unable to traverse %s: %v", path, err))
			return nil
		}

		// For directories, determine whether or not the subtree could contain
		// selected paths, skipping it entirely if not.
		if entry.IsDir() {
			if !selector.CouldHoldSelected(path) {
				walkLogger.Debugf("pruning %s", path)
				return fs.SkipDir
			}
			return nil
		}

		// Check whether or not the file is selected.
		if !selector.Matches(path) {
			walkLogger.Tracef("skipping %s", path)
			return nil
		}
		selected++

		// Compute the base-relative path for display.
		relative, err := filepath.Rel(directory, path)
		if err != nil {
			return errors.Wrap(err, "unable to compute relative path")
		}
		relative = filepath.ToSlash(relative)

		// Print the path, including size information in long mode.
		if listConfiguration.long {
			metadata, err := entry.Info()
			if err != nil {
				return errors.Wrap(err, "unable to read file metadata")
			}
			size := uint64(metadata.Size())
			totalSize += size
			fmt.Printf("%10s  %s\n", humanize.Bytes(size), relative)
		} else {
			fmt.Println(relative)
		}

		// Success.
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "unable to walk base directory")
	}

	// Print a summary in long mode.
	if listConfiguration.long {
		fmt.Printf("%d files, %s total\n", selected, humanize.Bytes(totalSize))
	}

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:          "list [<directory>]",
	Short:        "List selected files beneath a directory",
	RunE:         listMain,
	SilenceUsage: true,
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// selectionFlags are the shared selection flags.
	selectionFlags
	// long indicates whether or not to use long-format listing.
	long bool
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
	listConfiguration.register(flags)
	flags.BoolVarP(&listConfiguration.long, "long", "l", false, "Show file sizes and a summary")
}
