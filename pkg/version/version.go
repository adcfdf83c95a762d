// Package version exposes the wastelink build version.
package version

// Version is the current wastelink version. Overridden at build time via
// -ldflags "-X github.com/nmehta6/wastelink/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "dev"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
