package bountyboard

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the bounty board API version this SDK was built for.
//
// The SDK is tested against this API version and may not work correctly
// with significantly different API versions.
const APIVersion = "1.0.0"

// APIVersionRange is the semver range of API versions this SDK is known to
// work with. Server versions outside this range may still respond, but the
// wire contract is not guaranteed.
const APIVersionRange = ">=1.0.0-0 <2.0.0"

var apiVersionConstraint = mustConstraint(APIVersionRange)

func mustConstraint(rng string) *semver.Constraints {
	c, err := semver.NewConstraint(rng)
	if err != nil {
		panic("bountyboard: invalid APIVersionRange: " + err.Error())
	}
	return c
}

// IsCompatible reports whether a server-reported API version falls inside
// [APIVersionRange]. Empty and unparseable versions are reported as
// incompatible.
func IsCompatible(serverVersion string) bool {
	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		return false
	}
	return apiVersionConstraint.Check(v)
}
