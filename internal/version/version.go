// Package version reports the modkeeper build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version and Commit are set at build time with -ldflags -X.
var (
	Version = "development"
	Commit  = "unknown"
)

// String returns the version, suffixed with the commit when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Detailed returns the version line printed by `modkeeper version`.
func Detailed() string {
	return fmt.Sprintf("modkeeper %s (%s %s/%s)", String(), goVersion(), runtime.GOOS, runtime.GOARCH)
}

func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.GoVersion != "" {
		return info.GoVersion
	}
	return runtime.Version()
}
