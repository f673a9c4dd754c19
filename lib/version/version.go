// Package version models chromium style 4-part version numbers and parses
// them out of the text that browsers, drivers and release endpoints print.
// https://www.chromium.org/developers/version-numbers/
package version

import "fmt"

// Version is a chromium release number. The four components are always
// printed, none of them is optional.
type Version struct {
	Major int
	Minor int
	Build int
	Patch int
}

// New version from the four components
func New(major, minor, build, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Build: build,
		Patch: patch,
	}
}

// String formats the version as "major.minor.build.patch"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Patch)
}
