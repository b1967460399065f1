package selector

import (
	"path/filepath"
	"strings"
)

// defaultSyntaxThreshold is the maximum length of a prefix before ':' that
// is still treated as part of the pattern rather than as a syntax qualifier.
// A single-character prefix is assumed to be a Windows drive letter.
const defaultSyntaxThreshold = 1

// useDefaultSyntax indicates whether or not a pattern lacks a syntax
// qualifier and should therefore be interpreted under the default syntax.
func useDefaultSyntax(pattern string) bool {
	return strings.IndexByte(pattern, ':') <= defaultSyntaxThreshold
}

// patternSet is a deduplicating set of pattern strings that preserves
// insertion order, keeping normalization results stable for display.
type patternSet struct {
	// members are the set members in insertion order.
	members []string
	// present tracks membership.
	present map[string]bool
}

// newPatternSet creates an empty pattern set with the specified capacity
// hint.
func newPatternSet(capacity int) *patternSet {
	return &patternSet{
		members: make([]string, 0, capacity),
		present: make(map[string]bool, capacity),
	}
}

// add inserts a pattern, indicating whether or not it was newly added.
func (s *patternSet) add(pattern string) bool {
	if s.present[pattern] {
		return false
	}
	s.present[pattern] = true
	s.members = append(s.members, pattern)
	return true
}

// remove deletes a pattern, indicating whether or not it was present.
func (s *patternSet) remove(pattern string) bool {
	if !s.present[pattern] {
		return false
	}
	delete(s.present, pattern)
	members := s.members[:0]
	for _, member := range s.members {
		if member != pattern {
			members = append(members, member)
		}
	}
	s.members = members
	return true
}

// clear removes all patterns.
func (s *patternSet) clear() {
	s.members = s.members[:0]
	s.present = make(map[string]bool)
}

// slice returns the set members in insertion order.
func (s *patternSet) slice() []string {
	return s.members
}

// normalizePatterns converts raw include or exclude patterns into their
// canonical forms. Empty patterns are dropped and duplicates are removed.
// Default-syntax patterns additionally have platform separators rewritten,
// trailing-slash shorthand expanded, redundant wildcard runs collapsed, and
// their zero-directory variant family merged in. Malformed syntax qualifiers
// are intentionally treated as default-syntax patterns rather than rejected.
func normalizePatterns(patterns []string, excludes bool) []string {
	if len(patterns) == 0 {
		return nil
	}
	normalized := newPatternSet(len(patterns))
	for _, pattern := range patterns {
		// Drop empty patterns.
		if pattern == "" {
			continue
		}

		// Rewrite default-syntax patterns into canonical form. The wildcard
		// run collapses are valid only because "**" may match zero
		// directories under the default syntax.
		defaultSyntax := useDefaultSyntax(pattern)
		if defaultSyntax {
			pattern = filepath.ToSlash(pattern)
			if strings.HasSuffix(pattern, "/") {
				pattern += "**"
			}
			for strings.HasSuffix(pattern, "/**/**") {
				pattern = pattern[:len(pattern)-3]
			}
			for strings.HasPrefix(pattern, "**/**/") {
				pattern = pattern[3:]
			}
			for {
				collapsed := strings.ReplaceAll(pattern, "/**/**/", "/**/")
				if collapsed == pattern {
					break
				}
				pattern = collapsed
			}
		}

		// Record the pattern itself.
		normalized.add(pattern)

		// The standard glob engine expects a directory level wherever "**"
		// adjoins a literal separator, but the default syntax allows "**"
		// to match no directory at all. Add the variants that reproduce
		// the zero-directory case.
		if defaultSyntax {
			addZeroDirectoryVariants(normalized, pattern, 0)
		}
	}
	return simplify(normalized, excludes)
}

// addZeroDirectoryVariants adds every variant of the given pattern in which
// one standalone "**" token is removed together with one adjacent slash,
// recursing into each reduced pattern to cover combinations of removals. The
// scan starts at the specified offset, which should be zero (recursive
// invocations resume from the removal point instead of rescanning).
func addZeroDirectoryVariants(variants *patternSet, pattern string, end int) {
	length := len(pattern)
	for {
		start := indexOf(pattern, "**", end)
		if start < 0 {
			return
		}
		end = start + 2
		if end < length {
			// A following character other than '/' means this occurrence
			// is not a standalone directory token (e.g. "***" or "**foo").
			if pattern[end] != '/' {
				continue
			}
			// Omit the trailing slash if there is nothing before the token.
			if start == 0 {
				end++
			}
		}
		if start > 0 {
			// A non-leading token must be preceded by '/', which is removed
			// with it.
			start--
			if pattern[start] != '/' {
				continue
			}
		}
		reduced := pattern[:start] + pattern[end:]
		if variants.add(reduced) {
			addZeroDirectoryVariants(variants, reduced, start)
		}
	}
}

// indexOf returns the index of the first occurrence of substr in s at or
// after the specified offset, or -1 if there is none.
func indexOf(s, substr string, from int) int {
	if index := strings.Index(s[from:], substr); index >= 0 {
		return index + from
	}
	return -1
}

// simplify applies dominance rules to a pattern set and returns its contents
// in insertion order. A literal "**" member makes every other pattern
// redundant: for excludes it becomes the only member, while for includes the
// set is emptied, since an empty include set already means that everything
// is included.
func simplify(patterns *patternSet, excludes bool) []string {
	if patterns.remove("**") {
		patterns.clear()
		if excludes {
			patterns.add("**")
		}
	}
	return patterns.slice()
}
