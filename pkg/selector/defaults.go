package selector

// defaultExcludes are the patterns merged into user excludes when default
// excludes are enabled at construction. The catalog covers the metadata
// directories of common version control systems and the temporary file
// shapes of common editors and operating systems.
var defaultExcludes = []string{
	// Miscellaneous typical temporary files
	"**/*~",
	"**/#*#",
	"**/.#*",
	"**/%*%",
	"**/._*",

	// CVS
	"**/CVS",
	"**/CVS/**",
	"**/.cvsignore",

	// RCS
	"**/RCS",
	"**/RCS/**",

	// SCCS
	"**/SCCS",
	"**/SCCS/**",

	// Visual SourceSafe
	"**/vssver.scc",

	// MKS
	"**/project.pj",

	// Subversion
	"**/.svn",
	"**/.svn/**",

	// Arch
	"**/.arch-ids",
	"**/.arch-ids/**",

	// Bazaar
	"**/.bzr",
	"**/.bzr/**",

	// SurroundSCM
	"**/.MySCMServerInfo",

	// Mac
	"**/.DS_Store",

	// Serena Dimensions Version 10
	"**/.metadata",
	"**/.metadata/**",

	// Mercurial
	"**/.hg",
	"**/.hg/**",

	// Git
	"**/.git",
	"**/.git/**",
	"**/.gitignore",

	// BitKeeper
	"**/BitKeeper",
	"**/BitKeeper/**",
	"**/ChangeSet",
	"**/ChangeSet/**",

	// darcs
	"**/_darcs",
	"**/_darcs/**",
	"**/.darcsrepo",
	"**/.darcsrepo/**",
	"**/-darcs-backup*",
	"**/.darcs-temp-mail",
}

// DefaultExcludes returns a copy of the default exclude pattern catalog.
func DefaultExcludes() []string {
	result := make([]string, len(defaultExcludes))
	copy(result, defaultExcludes)
	return result
}

// addDefaultExcludes returns the given excludes, optionally expanded with
// the default exclude catalog.
func addDefaultExcludes(excludes []string, useDefaultExcludes bool) []string {
	if !useDefaultExcludes {
		return excludes
	}
	if len(excludes) == 0 {
		return defaultExcludes
	}
	result := make([]string, 0, len(excludes)+len(defaultExcludes))
	result = append(result, excludes...)
	result = append(result, defaultExcludes...)
	return result
}
