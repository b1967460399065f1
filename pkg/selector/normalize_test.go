package selector

import (
	"path/filepath"
	"testing"
)

// equalPatterns indicates whether or not two pattern slices have the same
// members in the same order.
func equalPatterns(first, second []string) bool {
	if len(first) != len(second) {
		return false
	}
	for i := range first {
		if first[i] != second[i] {
			return false
		}
	}
	return true
}

// TestNormalizePatterns tests pattern normalization, including the
// zero-directory variant families derived for default-syntax patterns.
func TestNormalizePatterns(t *testing.T) {
	// Define test cases.
	tests := []struct {
		patterns []string
		excludes bool
		expected []string
	}{
		// Empty and degenerate inputs.
		{nil, false, nil},
		{[]string{}, false, nil},
		{[]string{""}, false, nil},
		{[]string{"", "foo"}, false, []string{"foo"}},

		// Deduplication.
		{[]string{"foo", "foo"}, false, []string{"foo"}},

		// Trailing-slash shorthand.
		{[]string{"foo/"}, false, []string{"foo/**", "foo"}},

		// Zero-directory variant families.
		{[]string{"**/*.txt"}, false, []string{"**/*.txt", "*.txt"}},
		{[]string{"foo/**"}, false, []string{"foo/**", "foo"}},
		{[]string{"a/**/b"}, false, []string{"a/**/b", "a/b"}},
		{
			[]string{"a/**/b/**/c.txt"},
			false,
			[]string{"a/**/b/**/c.txt", "a/b/**/c.txt", "a/b/c.txt", "a/**/b/c.txt"},
		},

		// Non-standalone wildcard occurrences derive no variants.
		{[]string{"foo**"}, false, []string{"foo**"}},
		{[]string{"**foo"}, false, []string{"**foo"}},
		{[]string{"a/***/b"}, false, []string{"a/***/b"}},

		// Redundant wildcard runs collapse.
		{[]string{"a/**/**/b"}, false, []string{"a/**/b", "a/b"}},
		{[]string{"a/**/**/**/b"}, false, []string{"a/**/b", "a/b"}},
		{[]string{"foo/**/**"}, false, []string{"foo/**", "foo"}},
		{[]string{"**/**/foo"}, false, []string{"**/foo", "foo"}},

		// Dominating wildcard.
		{[]string{"src/**", "**"}, false, nil},
		{[]string{"src/**", "**"}, true, []string{"**"}},
		{[]string{"**/"}, false, nil},
		{[]string{"**/"}, true, []string{"**"}},

		// Syntax-qualified patterns pass through untouched.
		{[]string{"glob:**/*.txt"}, false, []string{"glob:**/*.txt"}},
		{[]string{"regex:.*\\.txt"}, false, []string{"regex:.*\\.txt"}},
		{[]string{"doublestar:**/*.txt"}, false, []string{"doublestar:**/*.txt"}},

		// A single-character prefix is a drive letter, not a qualifier.
		{[]string{"w:*.txt"}, false, []string{"w:*.txt"}},
	}

	// Process test cases.
	for i, test := range tests {
		normalized := normalizePatterns(test.patterns, test.excludes)
		if !equalPatterns(normalized, test.expected) {
			t.Errorf("test index %d: normalization of %v yielded %v, expected %v",
				i, test.patterns, normalized, test.expected,
			)
		}
	}
}

// TestNormalizePatternsIdempotent tests that normalizing an already
// normalized pattern set is a fixed point.
func TestNormalizePatternsIdempotent(t *testing.T) {
	// Define test inputs.
	tests := [][]string{
		{"**/*.txt"},
		{"foo/"},
		{"a/**/b/**/c.txt"},
		{"a/**/**/**/b"},
		{"**"},
		{"**/"},
		{"glob:**/*.txt", "src/**", "*.md"},
		{"w:*.txt", "regex:.*"},
	}

	// Process test inputs for both roles.
	for i, patterns := range tests {
		for _, excludes := range []bool{false, true} {
			once := normalizePatterns(patterns, excludes)
			twice := normalizePatterns(once, excludes)
			if !equalPatterns(once, twice) {
				t.Errorf("test index %d (excludes: %t): renormalization yielded %v, expected %v",
					i, excludes, twice, once,
				)
			}
		}
	}
}

// TestNormalizePatternsSeparatorRewrite tests that platform separators are
// rewritten to slashes in default-syntax patterns.
func TestNormalizePatternsSeparatorRewrite(t *testing.T) {
	pattern := "foo" + string(filepath.Separator) + "bar" + string(filepath.Separator)
	normalized := normalizePatterns([]string{pattern}, false)
	if !equalPatterns(normalized, []string{"foo/bar/**", "foo/bar"}) {
		t.Errorf("normalization of %q yielded %v", pattern, normalized)
	}
}
