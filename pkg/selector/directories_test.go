package selector

import (
	"testing"
)

// TestDirectoryPatterns tests the projection of file patterns onto
// directory-pruning patterns for both includes and excludes.
func TestDirectoryPatterns(t *testing.T) {
	// Define test cases. Inputs run through normalization first, matching
	// the construction pipeline.
	tests := []struct {
		patterns []string
		excludes bool
		expected []string
	}{
		// Excludes: only whole-subtree patterns allow pruning.
		{[]string{"biz/**"}, true, []string{"biz"}},
		{[]string{"glob:biz/**"}, true, []string{"glob:biz"}},
		{[]string{"foo/", "bar/**/baz"}, true, []string{"foo"}},
		{[]string{"*.log"}, true, nil},
		{[]string{"**"}, true, nil},
		{[]string{"regex:.*"}, true, nil},
		{[]string{"doublestar:foo/**"}, true, nil},

		// Includes: a leading recursive wildcard admits matches at any
		// depth, so no pruning is possible.
		{[]string{"**/*.txt"}, false, nil},
		{[]string{"**/foo/*.txt"}, false, nil},
		{[]string{"**"}, false, nil},

		// Includes: a literal directory prefix bounds the traversal.
		{[]string{"src/**/*.go"}, false, []string{"src", "src/**"}},
		{[]string{"a/b/**"}, false, []string{"a", "a/b", "a/b/**"}},
		{[]string{"glob:src/**/*.go"}, false, []string{"glob:src", "glob:src/**"}},
		{
			[]string{"src/main/**", "docs/*.md"},
			false,
			[]string{"src", "src/main", "src/main/**", "docs"},
		},

		// Includes: fixed-depth patterns need only their ancestor chain.
		{[]string{"docs/*.md"}, false, []string{"docs"}},
		{[]string{"*.txt"}, false, nil},

		// Includes: unbounded syntaxes disable pruning entirely, even for
		// sibling patterns that would otherwise allow it.
		{[]string{"doublestar:**/x.txt"}, false, nil},
		{[]string{"src/**", "regex:.*\\.tmp"}, false, nil},
	}

	// Process test cases.
	for i, test := range tests {
		directories := directoryPatterns(normalizePatterns(test.patterns, test.excludes), test.excludes)
		if !equalPatterns(directories, test.expected) {
			t.Errorf("test index %d: projection of %v yielded %v, expected %v",
				i, test.patterns, directories, test.expected,
			)
		}
	}
}

// TestDirectoryPatternsSoundness tests the pruning invariant directly at the
// pattern level: no ancestor of a path accepted by the file patterns may be
// rejected by the projected directory patterns.
func TestDirectoryPatternsSoundness(t *testing.T) {
	// Define include pattern sets alongside sample paths they accept.
	tests := []struct {
		includes []string
		accepted []string
	}{
		{[]string{"**/*.txt"}, []string{"root.txt", "foo/bar/leaf.txt"}},
		{[]string{"src/**/*.go"}, []string{"src/root.go", "src/internal/util/util.go"}},
		{[]string{"**/foo/*.txt"}, []string{"foo/a.txt", "x/y/foo/b.txt"}},
		{[]string{"docs/*.md", "src/**"}, []string{"docs/readme.md", "src/a/b/c"}},
		{[]string{"a/b/**"}, []string{"a/b/c", "a/b/c/d/e"}},
	}

	// Process test cases.
	for i, test := range tests {
		selector, err := NewSelector("/base", test.includes, nil, false)
		if err != nil {
			t.Fatalf("test index %d: unable to create selector: %v", i, err)
		}
		for _, accepted := range test.accepted {
			path := "/base/" + accepted
			if !selector.Matches(path) {
				t.Errorf("test index %d: %q unexpectedly not selected", i, accepted)
				continue
			}
			for j := len(accepted) - 1; j > 0; j-- {
				if accepted[j] != '/' {
					continue
				}
				ancestor := "/base/" + accepted[:j]
				if !selector.CouldHoldSelected(ancestor) {
					t.Errorf("test index %d: ancestor %q of selected path %q rejected",
						i, accepted[:j], accepted,
					)
				}
			}
			if !selector.CouldHoldSelected("/base") {
				t.Errorf("test index %d: base directory rejected", i)
			}
		}
	}
}
