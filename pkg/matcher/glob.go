package matcher

import (
	"github.com/gobwas/glob"

	"github.com/pkg/errors"
)

// globMatcher implements Matcher for the glob syntax.
type globMatcher struct {
	// pattern is the compiled glob pattern.
	pattern glob.Glob
}

// newGlobMatcher compiles a glob expression. The expression is compiled with
// '/' as the separator character, so that '*' and '?' don't cross directory
// boundaries while "**" does.
func newGlobMatcher(expression string) (Matcher, error) {
	pattern, err := glob.Compile(expression, '/')
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile glob expression")
	}
	return &globMatcher{pattern: pattern}, nil
}

// Matches implements Matcher.Matches.
func (m *globMatcher) Matches(path string) bool {
	return m.pattern.Match(path)
}
