package matcher

// Matcher performs path matching against a compiled pattern. Implementations
// must be safe for concurrent usage and must always return the same result
// for a given path.
type Matcher interface {
	// Matches indicates whether or not the matcher matches the specified
	// path. Unless an implementation documents otherwise, the path must be
	// relative and slash-separated.
	Matches(path string) bool
}

// Func is an adapter that allows an ordinary function to be used as a
// Matcher.
type Func func(path string) bool

// Matches implements Matcher.Matches.
func (f Func) Matches(path string) bool {
	return f(path)
}

// all is the Matcher implementation underlying All.
type all struct{}

// Matches implements Matcher.Matches.
func (all) Matches(_ string) bool {
	return true
}

// All returns a matcher that matches every path.
func All() Matcher {
	return all{}
}
