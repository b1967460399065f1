package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Geomatys/pathselect/cmd"

	"github.com/Geomatys/pathselect/pkg/pathselect"
)

// legalMain is the entry point for the legal command.
func legalMain(_ *cobra.Command, _ []string) error {
	// Print legal information. The notice constant already ends with a
	// newline, so print it with a single additional newline appended rather
	// than using fmt.Println, which vet would flag as redundant. The output
	// is byte-for-byte identical.
	fmt.Print(pathselect.LegalNotice + "\n")

	// Success.
	return nil
}

// legalCommand is the legal command.
var legalCommand = &cobra.Command{
	Use:   "legal",
	Short: "Show legal information",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(legalMain),
}

// legalConfiguration stores configuration for the legal command.
var legalConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := legalCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&legalConfiguration.help, "help", "h", false, "Show help information")
}
