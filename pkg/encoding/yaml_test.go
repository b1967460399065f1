package encoding

import (
	"io/ioutil"
	"os"
	"testing"
)

// testMessageYAML is a test structure for YAML loading tests.
type testMessageYAML struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

const testMessageYAMLString = "includes:\n  - \"**/*.txt\"\nexcludes:\n  - \"biz/**\"\n"

// writeTemporaryFile writes data to a temporary file and returns its path.
// The caller is responsible for removing the file.
func writeTemporaryFile(t *testing.T, data string) string {
	file, err := ioutil.TempFile("", "pathselect_encoding")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(data)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	return file.Name()
}

func TestLoadAndUnmarshalYAML(t *testing.T) {
	// Write the test YAML to a temporary file and defer its cleanup.
	path := writeTemporaryFile(t, testMessageYAMLString)
	defer os.Remove(path)

	// Attempt to load and unmarshal.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify test value contents.
	if len(value.Includes) != 1 || value.Includes[0] != "**/*.txt" {
		t.Error("test message includes not as expected:", value.Includes)
	}
	if len(value.Excludes) != 1 || value.Excludes[0] != "biz/**" {
		t.Error("test message excludes not as expected:", value.Excludes)
	}
}

func TestLoadAndUnmarshalYAMLUnknownField(t *testing.T) {
	// Write YAML with an unknown field to a temporary file and defer its
	// cleanup.
	path := writeTemporaryFile(t, "bogus: true\n")
	defer os.Remove(path)

	// Ensure that strict decoding rejects the unknown field.
	value := &testMessageYAML{}
	if LoadAndUnmarshalYAML(path, value) == nil {
		t.Error("expected LoadAndUnmarshalYAML to reject unknown fields")
	}
}

func TestLoadAndUnmarshalYAMLEmpty(t *testing.T) {
	// Write an empty temporary file and defer its cleanup.
	path := writeTemporaryFile(t, "")
	defer os.Remove(path)

	// Ensure that empty files load cleanly and leave the value unmodified.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Error("LoadAndUnmarshalYAML failed on empty file:", err)
	}
	if len(value.Includes) != 0 || len(value.Excludes) != 0 {
		t.Error("empty file unexpectedly modified target value")
	}
}
