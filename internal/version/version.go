// Package version provides build version information for oracheck.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X oracheck/internal/version.Version=v1.0.0 \
//	  -X oracheck/internal/version.GitCommit=abc123 \
//	  -X oracheck/internal/version.BuildTime=2026-01-15T10:30:00Z"
package version

import (
	"fmt"
	"runtime"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
	BuildTime = "unknown" // RFC3339 build timestamp
)

// Info holds structured version information.
type Info struct {
	BuildTag  string `json:"build_tag"`  // Version tag (e.g., "v1.0.0" or "dev")
	BuildTime string `json:"build_time"` // RFC3339 build timestamp
	GitCommit string `json:"git_commit"` // Short git commit hash
	GoVersion string `json:"go_version"` // Go runtime version
	Platform  string `json:"platform"`   // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	return Info{
		BuildTag:  Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string suitable for display.
func (i Info) String() string {
	return fmt.Sprintf("oracheck %s\ncommit:  %s\nbuilt:   %s\ngo:      %s\nplatform: %s\n",
		i.BuildTag, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
