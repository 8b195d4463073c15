// Copyright (c) 2020 Shivaram Lingamneni
// Copyright (c) 2026 The Scribe Authors
// Released under the MIT license

// Package version holds the version string printed by --version and logged
// at startup.
package version

// SemVer is the semantic version of Scribe.
const SemVer = "0.3.0-unreleased"

// Ver is the full version of Scribe.
var Ver = "scribe-" + SemVer

// SetVersionString records the build's tagged version and git hash, either
// of which may be empty. Both are set in package main via linker flags.
func SetVersionString(version, commit string) {
	Ver = versionString(version, commit)
}

func versionString(version, commit string) string {
	switch {
	case version != "":
		return "scribe-" + version
	case len(commit) >= 16:
		return "scribe-" + SemVer + "-" + commit[:16]
	case commit != "":
		return "scribe-" + SemVer + "-" + commit
	default:
		return "scribe-" + SemVer
	}
}
