package matcher

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// SyntaxGlob is the name of the glob pattern syntax. Its recursive
	// wildcard ("**") crosses directory separators, but any literal
	// separator adjacent to it still requires a separator in the path, so
	// forms like "**/*.txt" require at least one directory level.
	SyntaxGlob = "glob"
	// SyntaxRegex is the name of the regular expression pattern syntax.
	// Expressions use RE2 syntax and must match the entire path.
	SyntaxRegex = "regex"
	// SyntaxDoublestar is the name of the doublestar pattern syntax, a glob
	// dialect in which "**/" natively matches zero or more directories.
	SyntaxDoublestar = "doublestar"
)

// Supported indicates whether or not a syntax name is recognized by Compile.
func Supported(syntax string) bool {
	switch syntax {
	case SyntaxGlob:
		return true
	case SyntaxRegex:
		return true
	case SyntaxDoublestar:
		return true
	default:
		return false
	}
}

// Compile compiles a syntax-qualified pattern of the form
// "<syntax>:<expression>" into a matcher. Unrecognized syntax names and
// expressions rejected by the corresponding engine yield an error.
func Compile(pattern string) (Matcher, error) {
	// Split the pattern into its syntax and expression components.
	index := strings.IndexByte(pattern, ':')
	if index < 0 {
		return nil, errors.New("missing syntax qualifier")
	}
	syntax, expression := pattern[:index], pattern[index+1:]

	// Dispatch compilation based on the syntax name.
	switch syntax {
	case SyntaxGlob:
		return newGlobMatcher(expression)
	case SyntaxRegex:
		return newRegexMatcher(expression)
	case SyntaxDoublestar:
		return newDoublestarMatcher(expression)
	default:
		return nil, errors.Errorf("unknown pattern syntax: %s", syntax)
	}
}
