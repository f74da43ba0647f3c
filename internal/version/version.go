// Package version reports which csscolour build is running. Release builds
// stamp the variables below through the linker, for example
//
//	go build -ldflags "-X github.com/jmylchreest/csscolour/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
)

// unset marks a linker variable that was not stamped.
const unset = "unknown"

// Linker-stamped build metadata. A plain go build leaves the defaults.
var (
	Version = "dev"
	Commit  = unset
	Date    = unset // RFC 3339
)

// Info is the build metadata printed by "csscolour version --format json".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the stamped metadata and the toolchain and platform of
// the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line banner for "csscolour version" and --version.
// Commit and date appear only when both were stamped.
func String() string {
	info := GetInfo()
	if info.Commit == unset || info.Date == unset {
		return fmt.Sprintf("csscolour version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("csscolour version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short is the version alone, as cobra prints it.
func Short() string {
	return Version
}

// shortCommit trims a full hash to eight characters.
func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
