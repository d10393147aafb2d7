package autocortext

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the AutoCortext API version this SDK was built for.
//
// AutoCortext does not publish version metadata yet; this value tracks
// the API generation the SDK's wire placeholders were written against.
const APIVersion = "0.1.0"

// APIVersionRange is the semver constraint of API versions this SDK is
// expected to work with.
const APIVersionRange = ">=0.1.0-0, <0.2.0"

// IsCompatible reports whether the given API version falls within
// [APIVersionRange]. Unparseable or empty versions are incompatible.
func IsCompatible(version string) bool {
	c, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}
