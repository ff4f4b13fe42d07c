// Package version provides centralized version information for the pinotctl
// batch submitter. Keeping the version in one place lets the CLI surface,
// the outbound User-Agent header, and the run log all report the same value.
// Follows semantic versioning (semver) conventions.

package version

// PinotctlVersion holds the current pinotctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const PinotctlVersion = "0.1.0-dev"
