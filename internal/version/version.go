// Package version reports which barangay build is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Name is the binary name shown in version output.
const Name = "barangay"

// Version is the release version, set with -ldflags at release time.
var Version = "development"

// Commit is the git commit hash, set with -ldflags at release time. When it is
// left unknown, String falls back to the VCS stamp of a `go install` build.
var Commit = "unknown"

var readBuildInfo = debug.ReadBuildInfo

// String returns Version, suffixed with the commit when one is known.
func String() string {
	if commit := commit(); commit != "" {
		return Version + "+" + commit
	}
	return Version
}

func commit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// Banner returns the one-line version banner. A negative count omits the
// resident total.
func Banner(count int) string {
	if count < 0 {
		return fmt.Sprintf("%s %s", Name, String())
	}
	if count == 1 {
		return fmt.Sprintf("%s %s (1 resident)", Name, String())
	}
	return fmt.Sprintf("%s %s (%d residents)", Name, String(), count)
}
