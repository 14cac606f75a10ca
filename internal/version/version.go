// Package version exposes the application version string.
package version

// Version is set at build time via -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "dev"
