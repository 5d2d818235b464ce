// Package buildinfo resolves the version identity of a trk binary.
//
// Release builds inject Version, Commit, and Date through ldflags; source
// builds fall back to the module and VCS metadata the Go toolchain embeds.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Injected via -X ldflags by the release pipeline. Empty for source builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// ModulePath identifies the binary when embedded build metadata is absent.
const ModulePath = "github.com/aidanlsb/trackfile"

// Info describes one binary: what was built, from which commit, with what.
type Info struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

// Resolve collects version details for the running binary. Embedded VCS
// metadata wins; ldflags fill whatever it leaves blank; runtime values are
// the floor.
func Resolve() Info {
	info := Info{
		Version:    "devel",
		ModulePath: ModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	if bi, ok := readBuildInfo(); ok && bi != nil {
		if bi.Main.Path != "" {
			info.ModulePath = bi.Main.Path
		}
		info.Version = NormalizeVersion(bi.Main.Version)
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}

		settings := indexSettings(bi)
		if v := settings["GOOS"]; v != "" {
			info.GOOS = v
		}
		if v := settings["GOARCH"]; v != "" {
			info.GOARCH = v
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if info.Version == "devel" && Version != "" {
		info.Version = NormalizeVersion(Version)
	}
	if info.Commit == "" {
		info.Commit = Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = Date
	}

	return info
}

// NormalizeVersion maps the toolchain's placeholder versions to "devel".
func NormalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func indexSettings(bi *debug.BuildInfo) map[string]string {
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}
