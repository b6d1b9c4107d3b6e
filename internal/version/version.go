package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// Mode forces the build mode when set at link time:
//
//	go build -ldflags "-X github.com/brandonbloom/later/internal/version.Mode=release"
//
// Recognized values are "release" and "debug". Anything else defers to the
// module version recorded in the build info.
var Mode string

var readBuildInfo = debug.ReadBuildInfo

// String reports the tagged module version, or "(devel)" for local,
// dirty, and pseudo-versioned builds.
func String() string {
	info, ok := readBuildInfo()
	if !ok {
		return devel
	}
	return normalize(info.Main.Version)
}

// Release reports whether this binary should act on real user data.
func Release() bool {
	switch strings.ToLower(strings.TrimSpace(Mode)) {
	case "release":
		return true
	case "debug":
		return false
	}
	return String() != devel
}

func normalize(v string) string {
	if v == "" || v == devel {
		return devel
	}
	if strings.Contains(v, "+dirty") || isPseudoVersion(v) {
		return devel
	}
	return v
}

// isPseudoVersion matches vX.Y.Z-yyyymmddhhmmss-abcdefabcdef and its
// pre-release variants.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return false
	}

	ts := parts[len(parts)-2]
	if i := strings.LastIndexByte(ts, '.'); i >= 0 {
		ts = ts[i+1:]
	}
	hash := parts[len(parts)-1]
	return len(ts) == 14 && allIn(ts, "0123456789") &&
		len(hash) >= 12 && allIn(strings.ToLower(hash), "0123456789abcdef")
}

func allIn(s, set string) bool {
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}
