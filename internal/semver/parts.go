package semver

import (
	"regexp"
	"strings"
)

// Parts holds the three numeric components of a semantic version as strings.
// Components absent from the source string default to "0".
type Parts struct {
	Major string
	Minor string
	Patch string
}

// digitRunRegex matches maximal runs of decimal digits. Separators between
// runs are irrelevant: "1.2.3", "1-2-3", and "release-1_2" all yield runs.
var digitRunRegex = regexp.MustCompile(`\d+`)

// ParseParts extracts major, minor, and patch components from a version
// string. A leading "v" prefix run is stripped, then the first three digit
// runs are assigned in order; missing components default to "0" and extra
// runs are ignored. No semver validation is performed.
func ParseParts(version string) Parts {
	parts := Parts{Major: "0", Minor: "0", Patch: "0"}
	if version == "" {
		return parts
	}

	clean := strings.TrimLeft(version, "v")

	runs := digitRunRegex.FindAllString(clean, 3)
	if len(runs) > 0 {
		parts.Major = runs[0]
	}
	if len(runs) > 1 {
		parts.Minor = runs[1]
	}
	if len(runs) > 2 {
		parts.Patch = runs[2]
	}

	return parts
}

// String returns the dotted "major.minor.patch" form.
func (p Parts) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Major) + len(p.Minor) + len(p.Patch) + 2)
	sb.WriteString(p.Major)
	sb.WriteByte('.')
	sb.WriteString(p.Minor)
	sb.WriteByte('.')
	sb.WriteString(p.Patch)
	return sb.String()
}
