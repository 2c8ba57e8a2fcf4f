// Package version exposes the build version string.
package version

// Overridden at build time:
//
//	-ldflags "-X github.com/routekit/svcconfig/internal/version.version=v0.2.0"
var version = "dev"

// Get returns the version string.
func Get() string { return version }
