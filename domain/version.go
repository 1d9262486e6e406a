package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches a lenient semantic version: an optional leading "v",
// major and minor, and an optional patch. It is deliberately unanchored so
// decorated tag names like "release-1.2.3-beta" still yield a comparable
// version; the first match in the input wins.
var versionPattern = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a semantic version reduced to its numeric triple.
// Pre-release and build metadata are not modeled; two tags differing only in
// such qualifiers compare equal.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion extracts the first major.minor[.patch] occurrence from text.
// The patch component defaults to 0 when the third group is absent.
func ParseVersion(text string) (Version, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, &ParseError{Input: text}
	}

	// The pattern only captures digit runs, so Atoi cannot fail here.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch := 0
	if m[3] != "" {
		patch, _ = strconv.Atoi(m[3])
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Compare orders v against other on the (major, minor, patch) triple,
// major first. It returns -1 when v is older, 0 when equal, 1 when newer.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return compareInt(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareInt(v.Minor, other.Minor)
	}
	return compareInt(v.Patch, other.Patch)
}

// After reports whether v is strictly newer than other.
func (v Version) After(other Version) bool {
	return v.Compare(other) > 0
}

// Equal reports whether both triples match component by component.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
