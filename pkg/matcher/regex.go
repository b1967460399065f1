package matcher

import (
	"regexp"

	"github.com/pkg/errors"
)

// regexMatcher implements Matcher for the regex syntax.
type regexMatcher struct {
	// expression is the compiled regular expression.
	expression *regexp.Regexp
}

// newRegexMatcher compiles a regular expression. The expression is anchored
// at both ends so that it has to match the entire path, not just a substring
// of it.
func newRegexMatcher(expression string) (Matcher, error) {
	compiled, err := regexp.Compile(`\A(?:` + expression + `)\z`)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile regular expression")
	}
	return &regexMatcher{expression: compiled}, nil
}

// Matches implements Matcher.Matches.
func (m *regexMatcher) Matches(path string) bool {
	return m.expression.MatchString(path)
}
