package version

import (
	"runtime/debug"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "(devel)"},
		{"(devel)", "(devel)"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2.3-rc.1", "v1.2.3-rc.1"},
		{"v1.2.3+dirty", "(devel)"},
		{"v0.0.0-20251019120000-abcdef123456", "(devel)"},
		{"v1.2.4-0.20251019120000-ABCDEF123456", "(devel)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := normalize(tc.in); got != tc.want {
				t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	origMode, origRead := Mode, readBuildInfo
	t.Cleanup(func() {
		Mode, readBuildInfo = origMode, origRead
	})

	withVersion := func(v string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: v}}, true
		}
	}

	cases := []struct {
		name    string
		mode    string
		version string
		want    bool
	}{
		{"taggedDefaultsToRelease", "", "v1.0.0", true},
		{"develDefaultsToDebug", "", "(devel)", false},
		{"forcedRelease", "release", "(devel)", true},
		{"forcedDebug", "Debug", "v1.0.0", false},
		{"unknownModeIgnored", "fast", "v1.0.0", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Mode = tc.mode
			readBuildInfo = withVersion(tc.version)
			if got := Release(); got != tc.want {
				t.Fatalf("Release() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

	if got := String(); got != "(devel)" {
		t.Fatalf("String() = %q, want (devel)", got)
	}
}
