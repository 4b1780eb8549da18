package version

import "fmt"

// Name identifies the tool in --version output and the User-Agent header.
const Name = "httpie-lite"

// Version represents a version of httpie-lite
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Current returns current version of httpie-lite
func Current() *Version {
	return &Version{major: 0, minor: 1, patch: 0}
}
