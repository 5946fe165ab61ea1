// Package version exposes the build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Stamped via ldflags, e.g.
// -X github.com/retriva/retriva/pkg/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = ""
	Date    = "unknown"
)

// Info is the resolved build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get resolves the stamped metadata, falling back to the VCS revision
// the toolchain embeds when no ldflags were set.
func Get() Info {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		commit = "unknown"
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the metadata on one line.
func (i Info) String() string {
	return fmt.Sprintf("retriva %s (commit: %s, built: %s, go: %s, %s)",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
