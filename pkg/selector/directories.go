package selector

import (
	"strings"
)

// directoryPatterns projects normalized file patterns onto the coarser
// patterns describing directories that are worth traversing (for includes)
// or skippable as whole subtrees (for excludes). The projection must be a
// sound over-approximation: a directory holding a selectable path must never
// be rejected by the projected patterns. Where a pattern's reach cannot be
// bounded to a directory prefix, the projection degrades to "no pruning"
// rather than guessing.
func directoryPatterns(patterns []string, excludes bool) []string {
	directories := newPatternSet(len(patterns))
	for _, pattern := range patterns {
		if excludes {
			// Only a pattern excluding everything under a directory allows
			// that directory to be skipped. Patterns excluding individual
			// files contribute nothing: their containing directories may
			// hold other content that is still wanted.
			if useDefaultSyntax(pattern) || strings.HasPrefix(pattern, "glob:") {
				if strings.HasSuffix(pattern, "/**") {
					directories.add(pattern[:len(pattern)-3])
				}
			}
			continue
		}

		// Determine the glob expression and its qualifier, if any. The
		// reach of non-glob syntaxes can't be bounded to any directory
		// prefix, so they disable include-based pruning entirely.
		var qualifier, expression string
		if strings.HasPrefix(pattern, "glob:") {
			qualifier, expression = pattern[:5], pattern[5:]
		} else if useDefaultSyntax(pattern) {
			expression = pattern
		} else {
			directories.add("**")
			continue
		}

		if star := strings.Index(expression, "**"); star >= 0 {
			// Matches live at unbounded depth below the literal directory
			// prefix preceding the recursive wildcard. Without such a
			// prefix, matches may occur anywhere and no pruning is
			// possible.
			cut := strings.LastIndexByte(expression[:star], '/')
			if cut <= 0 {
				directories.add("**")
				continue
			}
			prefix := expression[:cut]
			addAncestorPatterns(directories, qualifier, prefix)
			directories.add(qualifier + prefix)
			directories.add(qualifier + prefix + "/**")
		} else if cut := strings.LastIndexByte(expression, '/'); cut > 0 {
			// A fixed-depth pattern requires traversal only along its
			// literal ancestor chain. Patterns without any separator name
			// entries directly under the base directory and need no
			// directory at all.
			prefix := expression[:cut]
			addAncestorPatterns(directories, qualifier, prefix)
			directories.add(qualifier + prefix)
		}
	}
	return simplify(directories, excludes)
}

// addAncestorPatterns adds a pattern for every proper ancestor of the given
// directory prefix. A top-down walk has to be permitted to enter each level
// on the way down before it can reach the prefix itself.
func addAncestorPatterns(directories *patternSet, qualifier, prefix string) {
	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '/' {
			directories.add(qualifier + prefix[:i])
		}
	}
}
