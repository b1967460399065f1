// Package selector implements path selection using include and exclude
// patterns. A selector decides whether an individual path is selected and
// whether a directory could possibly contain selected paths, allowing
// callers that walk a filesystem to prune entire subtrees without first
// enumerating their contents.
//
// Patterns may carry a syntax qualifier ("<syntax>:<expression>"). Patterns
// without a qualifier use a default syntax: a glob dialect in which the
// recursive wildcard ("**") may match zero directories, so that "**/*.txt"
// also selects files directly under the base directory. Since the standard
// glob engine requires at least one directory level at such positions, the
// selector rewrites every default-syntax pattern into an equivalent family
// of glob patterns at construction time.
//
// The selector itself never touches the filesystem: construction and queries
// are pure computation over the supplied strings.
package selector
