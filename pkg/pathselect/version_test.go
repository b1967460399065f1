package pathselect

import (
	"strings"
	"testing"
)

// TestVersion tests that the stringified version is non-empty and well-formed.
func TestVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("version string is empty")
	}
	if strings.Contains(Version, " ") {
		t.Error("version string contains spaces")
	}
	if components := strings.Split(strings.SplitN(Version, "-", 2)[0], "."); len(components) != 3 {
		t.Error("version string does not contain three components:", Version)
	}
}
