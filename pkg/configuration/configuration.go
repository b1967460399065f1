package configuration

import (
	"os"

	"github.com/pkg/errors"

	"github.com/Geomatys/pathselect/pkg/encoding"
)

// SelectionConfiguration encodes default selection patterns.
type SelectionConfiguration struct {
	// Includes are the default include patterns.
	Includes []string `yaml:"includes"`
	// Excludes are the default exclude patterns.
	Excludes []string `yaml:"excludes"`
	// UseDefaultExcludes controls whether or not the built-in exclude catalog
	// is applied. A nil value leaves the decision to the caller.
	UseDefaultExcludes *bool `yaml:"defaultExcludes"`
}

// Configuration is the global YAML configuration object type.
type Configuration struct {
	// Selection is the global selection configuration.
	Selection struct {
		// Defaults are the global selection configuration defaults.
		Defaults SelectionConfiguration `yaml:"defaults"`
	} `yaml:"select"`
}

// LoadFromPath attempts to load a YAML-based global configuration file from
// the specified path. If the file does not exist, a configuration with
// default values is returned. The returned structure is not re-used, so its
// members can be freely mutated.
func LoadFromPath(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. Non-existence is not an error, it simply yields the
	// default configuration.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Success.
	return result, nil
}

// Load loads the global configuration file from the user's home directory. If
// the file does not exist, a configuration with default values is returned.
func Load() (*Configuration, error) {
	// Compute the global configuration path.
	path, err := GlobalConfigurationPath()
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute global configuration path")
	}

	// Attempt to load from it.
	return LoadFromPath(path)
}
