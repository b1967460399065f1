package matcher

import (
	"testing"
)

// matchTest encodes a single pattern/path matching expectation.
type matchTest struct {
	// pattern is the syntax-qualified pattern to compile.
	pattern string
	// path is the slash-separated relative path to test.
	path string
	// expected is the expected matching result.
	expected bool
}

// run compiles each test's pattern and verifies the matching result.
func run(t *testing.T, tests []matchTest) {
	t.Helper()
	for i, test := range tests {
		matcher, err := Compile(test.pattern)
		if err != nil {
			t.Errorf("test index %d: unable to compile %q: %v", i, test.pattern, err)
			continue
		}
		if matched := matcher.Matches(test.path); matched != test.expected {
			t.Errorf("test index %d: match of %q against %q (%t) not as expected (%t)",
				i, test.path, test.pattern, matched, test.expected,
			)
		}
	}
}

// TestGlobMatching tests glob syntax semantics. In particular, it pins down
// the property that a recursive wildcard adjacent to a literal separator
// requires at least one directory level.
func TestGlobMatching(t *testing.T) {
	run(t, []matchTest{
		{"glob:*.txt", "root.txt", true},
		{"glob:*.txt", "foo/bar.txt", false},
		{"glob:**", "root.txt", true},
		{"glob:**", "foo/bar/leaf.txt", true},
		{"glob:**/*.txt", "root.txt", false},
		{"glob:**/*.txt", "foo/bar.txt", true},
		{"glob:**/*.txt", "foo/bar/leaf.txt", true},
		{"glob:foo/**", "foo", false},
		{"glob:foo/**", "foo/bar", true},
		{"glob:foo/**", "foo/bar/leaf.txt", true},
		{"glob:a/**/b", "a/b", false},
		{"glob:a/**/b", "a/x/b", true},
		{"glob:a/**/b", "a/x/y/b", true},
		{"glob:?.txt", "a.txt", true},
		{"glob:?.txt", "ab.txt", false},
		{"glob:?", "/", false},
		{"glob:", "", true},
		{"glob:", "a", false},
	})
}

// TestRegexMatching tests regex syntax semantics, in particular that
// expressions are anchored to the entire path.
func TestRegexMatching(t *testing.T) {
	run(t, []matchTest{
		{`regex:.*\.txt`, "root.txt", true},
		{`regex:.*\.txt`, "foo/bar/leaf.txt", true},
		{`regex:.*\.txt`, "leaf.txt.bak", false},
		{`regex:bar`, "foo/bar", false},
		{`regex:foo|bar`, "foo", true},
		{`regex:foo|bar`, "bar", true},
		{`regex:foo|bar`, "xfoo", false},
		{`regex:foo|bar`, "barx", false},
	})
}

// TestDoublestarMatching tests doublestar syntax semantics, in particular
// that its recursive wildcard natively matches zero directories.
func TestDoublestarMatching(t *testing.T) {
	run(t, []matchTest{
		{"doublestar:**/*.txt", "root.txt", true},
		{"doublestar:**/*.txt", "foo/bar/leaf.txt", true},
		{"doublestar:foo/**", "foo/bar", true},
		{"doublestar:*.txt", "foo/bar.txt", false},
	})
}

// TestAll tests the accept-everything matcher.
func TestAll(t *testing.T) {
	matcher := All()
	for i, path := range []string{"", "root.txt", "foo/bar/leaf.txt"} {
		if !matcher.Matches(path) {
			t.Errorf("test index %d: %q not matched", i, path)
		}
	}
}

// TestFunc tests the function adapter.
func TestFunc(t *testing.T) {
	matcher := Func(func(path string) bool {
		return path == "foo"
	})
	if !matcher.Matches("foo") {
		t.Error("adapted function rejected expected path")
	}
	if matcher.Matches("bar") {
		t.Error("adapted function accepted unexpected path")
	}
}
