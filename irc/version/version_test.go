// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package version

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	testCases := []struct {
		version  string
		commit   string
		expected string
	}{
		{"", "", "scribe-" + SemVer},
		{"", strings.Repeat("ab", 20), "scribe-" + SemVer + "-abababababababab"},
		{"", "abc123", "scribe-" + SemVer + "-abc123"},
		{"1.0.0", strings.Repeat("ab", 20), "scribe-1.0.0"},
	}
	for _, tt := range testCases {
		if got := versionString(tt.version, tt.commit); got != tt.expected {
			t.Errorf("versionString(%q, %q) = %q, expected %q", tt.version, tt.commit, got, tt.expected)
		}
	}
}

func TestSetVersionString(t *testing.T) {
	defer func(ver string) { Ver = ver }(Ver)

	SetVersionString("1.0.0", "")
	if Ver != "scribe-1.0.0" {
		t.Errorf("unexpected version %s", Ver)
	}
}
