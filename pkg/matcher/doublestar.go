package matcher

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/pkg/errors"
)

// doublestarMatcher implements Matcher for the doublestar syntax.
type doublestarMatcher struct {
	// expression is the validated doublestar expression.
	expression string
}

// newDoublestarMatcher validates a doublestar expression. We have to match
// against a non-empty path (we choose something simple), otherwise bad
// pattern errors won't be detected.
func newDoublestarMatcher(expression string) (Matcher, error) {
	if _, err := doublestar.Match(expression, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate doublestar expression")
	}
	return &doublestarMatcher{expression: expression}, nil
}

// Matches implements Matcher.Matches.
func (m *doublestarMatcher) Matches(path string) bool {
	// Since we've already validated the expression in the constructor, we
	// know the match can't fail with an error (its only return code is on
	// bad patterns).
	match, _ := doublestar.Match(m.expression, path)
	return match
}
