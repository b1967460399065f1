package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/spf13/pflag"

	"github.com/Geomatys/pathselect/pkg/configuration"
	"github.com/Geomatys/pathselect/pkg/logging"
	"github.com/Geomatys/pathselect/pkg/selector"
)

// selectionFlags encodes the command line flags shared by commands that
// construct selectors.
type selectionFlags struct {
	// includes are the include patterns specified on the command line.
	includes []string
	// excludes are the exclude patterns specified on the command line.
	excludes []string
	// noDefaultExcludes disables the built-in exclude catalog.
	noDefaultExcludes bool
	// noGlobalConfiguration disables loading of the global configuration
	// file.
	noGlobalConfiguration bool
	// logLevel stores the value of the --log-level flag.
	logLevel string
}

// register registers the shared selection flags with the specified flag set.
func (f *selectionFlags) register(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&f.includes, "include", "i", nil, "Select only paths matching the specified pattern (may be repeated)")
	flags.StringSliceVarP(&f.excludes, "exclude", "e", nil, "Skip paths matching the specified pattern (may be repeated)")
	flags.BoolVar(&f.noDefaultExcludes, "no-default-excludes", false, "Don't apply the built-in exclude patterns")
	flags.BoolVar(&f.noGlobalConfiguration, "no-global-configuration", false, "Ignore the global configuration file")
	flags.StringVar(&f.logLevel, "log-level", logging.LevelWarn.String(), "Set the log level ("+strings.Join(logging.LevelNames(), "|")+")")
}

// logger creates a logger based on the --log-level flag.
func (f *selectionFlags) logger() (*logging.Logger, error) {
	level, ok := logging.NameToLevel(f.logLevel)
	if !ok {
		return nil, errors.Errorf("invalid log level: %s", f.logLevel)
	}
	return logging.NewLogger(level), nil
}

// createSelector constructs a selector for the specified base directory by
// combining the shared selection flags with defaults from the global
// configuration file. Patterns specified on the command line take precedence
// over configured defaults, which are only consulted for pattern kinds that
// aren't specified at all.
func (f *selectionFlags) createSelector(directory string) (*selector.Selector, error) {
	// Start with the command line patterns and default exclude behavior.
	includes := f.includes
	excludes := f.excludes
	useDefaultExcludes := !f.noDefaultExcludes

	// Unless disabled, attempt to load defaults from the global configuration
	// file. A missing file simply yields no defaults.
	if !f.noGlobalConfiguration {
		global, err := configuration.Load()
		if err != nil {
			return nil, errors.Wrap(err, "unable to load global configuration")
		}
		defaults := global.Selection.Defaults
		if len(includes) == 0 {
			includes = defaults.Includes
		}
		if len(excludes) == 0 {
			excludes = defaults.Excludes
		}
		if !f.noDefaultExcludes && defaults.UseDefaultExcludes != nil {
			useDefaultExcludes = *defaults.UseDefaultExcludes
		}
	}

	// Create the selector.
	return selector.NewSelector(directory, includes, excludes, useDefaultExcludes)
}
