package selectortest

import (
	"path/filepath"
	"testing"
)

// Selector is the query surface exercised by test cases.
type Selector interface {
	// Matches determines whether or not a path is selected.
	Matches(path string) bool
	// CouldHoldSelected determines whether or not a directory could contain
	// selected paths.
	CouldHoldSelected(directory string) bool
}

// TestValue encodes a single query expectation in a TestCase.
type TestValue struct {
	// Path is the slash-separated path to query, relative to the base
	// directory passed to the constructor. An empty path queries the base
	// directory itself.
	Path string
	// Directory indicates whether or not the query should use
	// CouldHoldSelected instead of Matches.
	Directory bool
	// Expected is the expected query result.
	Expected bool
}

// TestCase encodes a sequence of query expectations for a selector built
// from a set of include and exclude patterns.
type TestCase struct {
	// Constructor is the selector constructor callback.
	Constructor func(directory string, includes, excludes []string, useDefaultExcludes bool) (Selector, error)
	// Includes are the include patterns.
	Includes []string
	// Excludes are the exclude patterns.
	Excludes []string
	// UseDefaultExcludes indicates whether or not to enable the built-in
	// exclude catalog.
	UseDefaultExcludes bool
	// Tests are the queries to run.
	Tests []TestValue
}

// Run invokes the test case with the specified test runner.
func (c *TestCase) Run(t *testing.T) {
	// Mark this runner as a helper.
	t.Helper()

	// Compute a platform-appropriate base directory. Queries don't perform
	// any I/O, so the directory doesn't need to exist.
	base := filepath.FromSlash("/base")

	// Create the selector.
	selector, err := c.Constructor(base, c.Includes, c.Excludes, c.UseDefaultExcludes)
	if err != nil {
		t.Fatal("unable to create selector:", err)
	}

	// Verify test values.
	for i, test := range c.Tests {
		path := filepath.Join(base, filepath.FromSlash(test.Path))
		var result bool
		if test.Directory {
			result = selector.CouldHoldSelected(path)
		} else {
			result = selector.Matches(path)
		}
		if result != test.Expected {
			operation := "selection"
			if test.Directory {
				operation = "traversability"
			}
			t.Errorf("test index %d: %s of %q (%t) not as expected (%t)",
				i, operation, test.Path, result, test.Expected,
			)
		}
	}
}
