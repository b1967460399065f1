package logging

// Level represents a log level. Its value hierarchy is designed to be ordered
// and comparable by value.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only fatal errors are logged.
	LevelError
	// LevelWarn indicates that both fatal and non-fatal errors are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged (in
	// addition to all errors).
	LevelInfo
	// LevelDebug indicates that advanced execution information is logged (in
	// addition to basic information and all errors).
	LevelDebug
	// LevelTrace indicates that low-level execution information is logged (in
	// addition to all other execution information and all errors).
	LevelTrace
)

// levelNames are the flag-facing level names in increasing verbosity order,
// indexed by level value.
var levelNames = []string{
	"disabled",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

// LevelNames returns a copy of the valid level names in increasing verbosity
// order, suitable for constructing flag usage strings.
func LevelNames() []string {
	names := make([]string, len(levelNames))
	copy(names, levelNames)
	return names
}

// NameToLevel converts a string-based representation of a log level to the
// appropriate Level value. It returns a boolean indicating whether or not the
// conversion was valid. If the name is invalid, LevelDisabled is returned.
func NameToLevel(name string) (Level, bool) {
	for i, candidate := range levelNames {
		if name == candidate {
			return Level(i), true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}
