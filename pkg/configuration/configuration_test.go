package configuration

import (
	"io/ioutil"
	"os"
	"testing"
)

const (
	testConfigurationGibberish = "[a+1a4"
	testConfigurationValid     = `select:
  defaults:
    includes:
      - "**/*.go"
      - "docs/"
    excludes:
      - "**/testdata/**"
    defaultExcludes: false
`
)

func TestLoadFromPathNonExistent(t *testing.T) {
	if c, err := LoadFromPath("/this/does/not/exist"); err != nil {
		t.Error("load from non-existent path failed:", err)
	} else if c == nil {
		t.Error("load from non-existent path returned nil configuration")
	}
}

func TestLoadFromPathEmpty(t *testing.T) {
	// Create an empty temporary file and defer its cleanup.
	file, err := ioutil.TempFile("", "pathselect_configuration")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load.
	if c, err := LoadFromPath(file.Name()); err != nil {
		t.Error("load from empty file failed:", err)
	} else if c == nil {
		t.Error("load from empty file returned nil configuration")
	}
}

func TestLoadFromPathGibberish(t *testing.T) {
	// Write gibberish to a temporary file and defer its cleanup.
	file, err := ioutil.TempFile("", "pathselect_configuration")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(testConfigurationGibberish)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load.
	if _, err := LoadFromPath(file.Name()); err == nil {
		t.Error("load did not fail on gibberish configuration")
	}
}

func TestLoadFromPathUnknownField(t *testing.T) {
	// Write a configuration with an unknown field to a temporary file and
	// defer its cleanup.
	file, err := ioutil.TempFile("", "pathselect_configuration")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte("select:\n  bogus: true\n")); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load.
	if _, err := LoadFromPath(file.Name()); err == nil {
		t.Error("load did not fail on unknown configuration field")
	}
}

func TestLoadFromPathValid(t *testing.T) {
	// Write a valid configuration to a temporary file and defer its cleanup.
	file, err := ioutil.TempFile("", "pathselect_configuration")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(testConfigurationValid)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load.
	configuration, err := LoadFromPath(file.Name())
	if err != nil {
		t.Fatal("load from valid configuration failed:", err)
	} else if configuration == nil {
		t.Fatal("load from valid configuration returned nil configuration")
	}

	// Verify defaults.
	defaults := configuration.Selection.Defaults
	if len(defaults.Includes) != 2 {
		t.Error("include defaults not as expected:", defaults.Includes)
	}
	if len(defaults.Excludes) != 1 {
		t.Error("exclude defaults not as expected:", defaults.Excludes)
	}
	if defaults.UseDefaultExcludes == nil {
		t.Error("default exclude behavior unexpectedly unspecified")
	} else if *defaults.UseDefaultExcludes {
		t.Error("default exclude behavior not as expected")
	}
}

func TestGlobalConfigurationPath(t *testing.T) {
	if path, err := GlobalConfigurationPath(); err != nil {
		t.Fatal("unable to compute global configuration path:", err)
	} else if path == "" {
		t.Error("global configuration path is empty")
	}
}

// NOTE: This test depends on not having an invalid ~/.pathselect.yml file.
func TestLoad(t *testing.T) {
	if c, err := Load(); err != nil {
		t.Error("load failed:", err)
	} else if c == nil {
		t.Error("load returned nil configuration")
	}
}
