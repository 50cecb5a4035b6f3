// Package version reports the build version of the dashboard binaries.
package version

// These variables are set via ldflags during build:
//
//	-X github.com/cloud-gov/cg-dashboard/pkg/version.version=v1.2.0
//
//nolint:gochecknoglobals // These are intentionally global for ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// GetVersion returns the current version
func GetVersion() string {
	return version
}

// GetBuildID returns the current build ID
func GetBuildID() string {
	return buildID
}

// GetFullVersion returns version with build ID
func GetFullVersion() string {
	return version + " (build: " + buildID + ")"
}
