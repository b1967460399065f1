package selector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Geomatys/pathselect/pkg/matcher"
)

// Selector performs path selection using include and exclude patterns. All
// pattern processing and matcher compilation happens at construction, so a
// selector is immutable afterwards and safe for concurrent use. Queries
// perform no I/O and never fail: paths that don't reside under the base
// directory are simply never selected.
type Selector struct {
	// root is the cleaned base directory against which queried paths are
	// relativized.
	root string
	// includePatterns and excludePatterns are the user-supplied patterns,
	// kept only for String. Showing the internally expanded forms in
	// diagnostic output would be confusing.
	includePatterns []string
	excludePatterns []string
	// includes and excludes are the per-file matchers. An empty include set
	// means that every path is a candidate, while an empty exclude set
	// means that no path is excluded.
	includes []matcher.Matcher
	excludes []matcher.Matcher
	// dirIncludes are the matchers for directories that could hold included
	// paths. They cover the ancestors of every directory needing traversal,
	// because a walk has to be permitted to enter those before it can reach
	// the directories themselves.
	dirIncludes []matcher.Matcher
	// dirExcludes are the matchers for directories excluded as whole
	// subtrees. Unlike dirIncludes, they don't cover parent directories:
	// those may contain other subtrees that are still wanted.
	dirExcludes []matcher.Matcher
}

// NewSelector creates a selector rooted at the specified base directory.
// Includes and excludes may be nil or empty: an absent include set means
// that every path is included and an absent exclude set means that no path
// is excluded. If useDefaultExcludes is true, the DefaultExcludes catalog is
// appended to the supplied excludes. Construction fails only if the base
// directory is empty or a pattern is rejected by its syntax's engine; such
// failures are configuration errors and identify the offending pattern.
func NewSelector(directory string, includes, excludes []string, useDefaultExcludes bool) (*Selector, error) {
	// Verify the base directory.
	if directory == "" {
		return nil, errors.New("empty base directory")
	}

	// Expand excludes with the default catalog if requested.
	excludes = addDefaultExcludes(excludes, useDefaultExcludes)

	// Normalize both pattern sets.
	includePatterns := normalizePatterns(includes, false)
	excludePatterns := normalizePatterns(excludes, true)

	// Compile the per-file matchers.
	includeMatchers, err := compilePatterns(includePatterns)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile include patterns")
	}
	excludeMatchers, err := compilePatterns(excludePatterns)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile exclude patterns")
	}

	// Compile the directory matchers used for pruning.
	dirIncludeMatchers, err := compilePatterns(directoryPatterns(includePatterns, false))
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile directory include patterns")
	}
	dirExcludeMatchers, err := compilePatterns(directoryPatterns(excludePatterns, true))
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile directory exclude patterns")
	}

	// Success.
	return &Selector{
		root:            filepath.Clean(directory),
		includePatterns: retainPatterns(includes),
		excludePatterns: retainPatterns(excludes),
		includes:        includeMatchers,
		excludes:        excludeMatchers,
		dirIncludes:     dirIncludeMatchers,
		dirExcludes:     dirExcludeMatchers,
	}, nil
}

// compilePatterns compiles normalized patterns into matchers, qualifying
// default-syntax patterns as globs.
func compilePatterns(patterns []string) ([]matcher.Matcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	matchers := make([]matcher.Matcher, len(patterns))
	for i, pattern := range patterns {
		qualified := pattern
		if useDefaultSyntax(pattern) {
			qualified = matcher.SyntaxGlob + ":" + pattern
		}
		compiled, err := matcher.Compile(qualified)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to compile pattern (%s)", pattern)
		}
		matchers[i] = compiled
	}
	return matchers, nil
}

// retainPatterns copies the non-empty members of user-supplied patterns for
// use in String.
func retainPatterns(patterns []string) []string {
	var result []string
	for _, pattern := range patterns {
		if pattern != "" {
			result = append(result, pattern)
		}
	}
	return result
}

// relativize converts a path into the slash-separated form relative to the
// base directory that matchers operate on. It returns false for paths that
// don't reside under the base directory.
func (s *Selector) relativize(path string) (string, bool) {
	relative, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", false
	}
	if relative == "." {
		return "", true
	}
	if relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(relative), true
}

// anyMatches indicates whether or not any of the matchers matches the
// specified path.
func anyMatches(matchers []matcher.Matcher, path string) bool {
	for _, m := range matchers {
		if m.Matches(path) {
			return true
		}
	}
	return false
}

// Matches determines whether or not a path is selected. This is true if the
// path resides under the base directory, matches an include pattern (or no
// include patterns were given), and matches no exclude pattern.
func (s *Selector) Matches(path string) bool {
	relative, ok := s.relativize(path)
	if !ok {
		return false
	}
	return (len(s.includes) == 0 || anyMatches(s.includes, relative)) &&
		(len(s.excludes) == 0 || !anyMatches(s.excludes, relative))
}

// CouldHoldSelected determines whether or not a directory could contain
// selected paths. The base directory itself always could. The result is an
// over-approximation: true merely means that the directory can't be proven
// empty of selectable content, while false is a guarantee that no path
// under the directory would be selected, making the subtree safe to skip.
func (s *Selector) CouldHoldSelected(directory string) bool {
	if filepath.Clean(directory) == s.root {
		return true
	}
	relative, ok := s.relativize(directory)
	if !ok {
		return false
	}
	return (len(s.dirIncludes) == 0 || anyMatches(s.dirIncludes, relative)) &&
		(len(s.dirExcludes) == 0 || !anyMatches(s.dirExcludes, relative))
}

// Simplify returns a potentially cheaper matcher equivalent to the selector
// and true if such a simplification exists, otherwise nil and false. A
// simplification exists when there are no exclude patterns and no
// directory-level patterns and at most one include matcher remains. The
// returned matcher accepts the same arguments as Matches, not relative
// paths.
func (s *Selector) Simplify() (matcher.Matcher, bool) {
	if len(s.excludes) == 0 && len(s.dirIncludes) == 0 && len(s.dirExcludes) == 0 {
		switch len(s.includes) {
		case 0:
			return matcher.Func(func(path string) bool {
				_, ok := s.relativize(path)
				return ok
			}), true
		case 1:
			include := s.includes[0]
			return matcher.Func(func(path string) bool {
				relative, ok := s.relativize(path)
				return ok && include.Matches(relative)
			}), true
		}
	}
	return nil, false
}

// String returns a human-readable representation of the selector, listing
// the user-supplied include and exclude patterns (plus the default exclude
// catalog, if it was enabled at construction).
func (s *Selector) String() string {
	return fmt.Sprintf("includes: [%s], excludes: [%s]",
		strings.Join(s.includePatterns, ", "),
		strings.Join(s.excludePatterns, ", "),
	)
}
